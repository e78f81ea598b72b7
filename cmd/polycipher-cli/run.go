package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/cipher"
	"github.com/spf13/cobra"
)

// RunExport is the JSON form of an encrypt or decrypt run.
type RunExport struct {
	Kind      string `json:"kind"`
	Direction string `json:"direction"`
	Alphabet  string `json:"alphabet"`
	Input     string `json:"input"`
	Output    string `json:"output"`
}

func newRunCmd(direction polycipher.Direction) *cobra.Command {
	short := "Encrypt text with the configured cipher."
	if direction == polycipher.Decrypt {
		short = "Decrypt text with the configured cipher."
	}
	cmd := &cobra.Command{
		Use:   string(direction) + " [text]",
		Short: short,
		Long: `Text is taken from the arguments, then from the spec file, then from stdin.
Flags override the values of the spec file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(cmd, args, direction)
		},
	}
	f := cmd.Flags()
	f.String("spec", "", "YAML or JSON spec file")
	f.String("kind", "", "cipher kind: rot, caesar, vigenere or multi-vigenere")
	f.String("alphabet", "", "literal alphabet symbols")
	f.StringP("alphabet-name", "a", "", "preset alphabet (see the alphabets command)")
	f.StringP("keyword", "k", "", "vigenere keyword")
	f.StringSlice("keys", nil, "multi-vigenere keys")
	f.Int("shift", 0, "rot/caesar shift")
	f.Int("step", 0, "rotation step of multi-vigenere tables")
	f.String("mode", "", "table mode: normal or mirror")
	f.String("strategy", "", "alternation strategy: round-robin, pattern or static")
	f.IntSlice("pattern", nil, "table indices for the pattern strategy")
	f.Int("static-index", 0, "table index for the static strategy")
	f.Bool("shuffle", false, "shuffle each table alphabet")
	f.String("seed", "", "hex seed making the shuffle reproducible")
	f.StringP("output", "o", "", "write the result to a file")
	return cmd
}

func runCipher(cmd *cobra.Command, args []string, direction polycipher.Direction) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	spec, err := specFromFlags(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		spec.Text = strings.Join(args, " ")
	} else if spec.Text == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		spec.Text = strings.TrimRight(string(data), "\r\n")
	}

	c, err := cipher.Build(spec)
	if err != nil {
		return err
	}
	result, err := cipher.Apply(c, spec.Text, direction)
	if err != nil {
		return err
	}

	data := []byte(result)
	if format == FormatJSON {
		data, err = json.MarshalIndent(RunExport{
			Kind:      string(c.Kind()),
			Direction: string(direction),
			Alphabet:  c.Alphabet().Name(),
			Input:     spec.Text,
			Output:    result,
		}, "", "  ")
		if err != nil {
			return err
		}
	}
	return writeOutput(cmd.OutOrStdout(), data, getString(cmd, "output"))
}

// specFromFlags loads --spec when given and applies every flag the user set
// on top of it.
func specFromFlags(cmd *cobra.Command) (polycipher.Spec, error) {
	var spec polycipher.Spec
	if path := getString(cmd, "spec"); path != "" {
		loaded, err := cipher.LoadSpec(path)
		if err != nil {
			return spec, err
		}
		spec = loaded
	}

	f := cmd.Flags()
	if f.Changed("kind") {
		spec.Kind = polycipher.CipherKind(getString(cmd, "kind"))
	}
	if f.Changed("alphabet") {
		spec.Alphabet = getString(cmd, "alphabet")
		spec.AlphabetName = ""
	}
	if f.Changed("alphabet-name") {
		spec.AlphabetName = getString(cmd, "alphabet-name")
		spec.Alphabet = ""
	}
	if f.Changed("keyword") {
		spec.Keyword = getString(cmd, "keyword")
	}
	if f.Changed("keys") {
		keys, err := f.GetStringSlice("keys")
		if err != nil {
			return spec, err
		}
		spec.Keys = keys
	}
	if f.Changed("shift") {
		shift := getInt(cmd, "shift")
		spec.Shift = &shift
	}
	if f.Changed("step") {
		spec.Step = getInt(cmd, "step")
	}
	if f.Changed("mode") {
		spec.Mode = polycipher.Mode(getString(cmd, "mode"))
	}
	if f.Changed("strategy") {
		spec.Strategy = polycipher.StrategyKind(getString(cmd, "strategy"))
	}
	if f.Changed("pattern") {
		pattern, err := f.GetIntSlice("pattern")
		if err != nil {
			return spec, err
		}
		spec.Pattern = pattern
	}
	if f.Changed("static-index") {
		spec.StaticIndex = getInt(cmd, "static-index")
	}
	if f.Changed("shuffle") {
		spec.Shuffle = getFlag(cmd, "shuffle")
	}
	if f.Changed("seed") {
		spec.Seed = getString(cmd, "seed")
	}

	if spec.Kind == "" {
		return spec, errors.New("no cipher kind: use --kind or --spec")
	}
	return spec, nil
}
