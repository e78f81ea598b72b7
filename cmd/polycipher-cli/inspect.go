package main

import (
	"fmt"
	"strings"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/core"
	"github.com/BackendStack21/polycipher-go/rotation"
	"github.com/BackendStack21/polycipher-go/sequence"
	"github.com/BackendStack21/polycipher-go/table"
	"github.com/BackendStack21/polycipher-go/utils"
	"github.com/spf13/cobra"
)

// RotationsExport is the JSON form of the rotations command.
type RotationsExport struct {
	Length         int         `json:"length"`
	CycleLengths   map[int]int `json:"cycle_lengths"`
	FullCycleSteps []int       `json:"full_cycle_steps"`
}

// TableExport is the JSON form of the table command.
type TableExport struct {
	Alphabet    string   `json:"alphabet"`
	Step        int      `json:"step"`
	Mode        string   `json:"mode"`
	CycleLength int      `json:"cycle_length"`
	Fingerprint string   `json:"fingerprint"`
	Rows        []string `json:"rows"`
}

// AlphabetExport describes one preset alphabet.
type AlphabetExport struct {
	Name        string `json:"name"`
	Length      int    `json:"length"`
	Symbols     string `json:"symbols"`
	Fingerprint string `json:"fingerprint"`
}

// addAlphabetFlags registers the flags selecting an alphabet.
func addAlphabetFlags(cmd *cobra.Command) {
	cmd.Flags().String("alphabet", "", "literal alphabet symbols")
	cmd.Flags().StringP("alphabet-name", "a", core.DefaultAlphabet, "preset alphabet")
}

func alphabetFromFlags(cmd *cobra.Command) (sequence.Alphabet[rune], error) {
	return core.ResolveAlphabet(polycipher.Spec{
		Alphabet:     getString(cmd, "alphabet"),
		AlphabetName: getString(cmd, "alphabet-name"),
	})
}

func newRotationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotations",
		Short: "List the cycle length of every step for an alphabet length.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			length := getInt(cmd, "length")
			if length == 0 {
				a, err := alphabetFromFlags(cmd)
				if err != nil {
					return err
				}
				length = a.Len()
			}
			cycles, err := rotation.ValidRotations(length)
			if err != nil {
				return err
			}
			full, err := rotation.FullCycleSteps(length)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == FormatJSON {
				return writeJSON(out, RotationsExport{Length: length, CycleLengths: cycles, FullCycleSteps: full})
			}
			fmt.Fprintf(out, "Length: %d\n", length)
			fmt.Fprintln(out, "step  cycle")
			for step := 1; step < length; step++ {
				marker := ""
				if cycles[step] == length {
					marker = "  full"
				}
				fmt.Fprintf(out, "%4d  %5d%s\n", step, cycles[step], marker)
			}
			return nil
		},
	}
	cmd.Flags().IntP("length", "n", 0, "sequence length (default: length of the alphabet)")
	addAlphabetFlags(cmd)
	return cmd
}

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the rotation table of an alphabet.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			a, err := alphabetFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := utils.CheckTableBudget(1, a.Len(), a.Len()); err != nil {
				return err
			}
			t, err := table.NewRotationTable(a, getInt(cmd, "step"), polycipher.Mode(getString(cmd, "mode")))
			if err != nil {
				return err
			}

			rows := make([]string, 0, t.CycleLength())
			parts := make([][]byte, 0, t.CycleLength())
			for _, row := range t.Rows() {
				rows = append(rows, string(row))
				parts = append(parts, []byte(string(row)))
			}
			export := TableExport{
				Alphabet:    a.Name(),
				Step:        t.Step(),
				Mode:        string(t.Mode()),
				CycleLength: t.CycleLength(),
				Fingerprint: utils.Fingerprint(parts...),
				Rows:        rows,
			}

			out := cmd.OutOrStdout()
			if format == FormatJSON {
				return writeJSON(out, export)
			}
			fmt.Fprintf(out, "Alphabet: %s  Step: %d  Mode: %s  Rows: %d  Fingerprint: %s\n",
				export.Alphabet, export.Step, export.Mode, export.CycleLength, export.Fingerprint)
			for i, row := range rows {
				fmt.Fprintf(out, "%3d  %s\n", i, row)
			}
			return nil
		},
	}
	cmd.Flags().Int("step", 1, "rotation step")
	cmd.Flags().String("mode", string(polycipher.ModeNormal), "row mode: normal or mirror")
	addAlphabetFlags(cmd)
	return cmd
}

func newAlphabetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "List the preset alphabets.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			var exports []AlphabetExport
			for _, name := range core.AlphabetNames() {
				a, err := core.GetAlphabet(name)
				if err != nil {
					return err
				}
				symbols := string(a.Symbols())
				exports = append(exports, AlphabetExport{
					Name:        name,
					Length:      a.Len(),
					Symbols:     symbols,
					Fingerprint: utils.Fingerprint([]byte(symbols)),
				})
			}

			out := cmd.OutOrStdout()
			if format == FormatJSON {
				return writeJSON(out, exports)
			}
			for _, e := range exports {
				fmt.Fprintf(out, "%-12s %3d  %s\n", e.Name, e.Length, strings.TrimSpace(e.Symbols))
			}
			return nil
		},
	}
}
