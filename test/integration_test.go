// Package test provides integration tests for the polycipher packages.
// These tests verify that the layers agree with each other end to end.
package test

import (
	"errors"
	"slices"
	"testing"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/cipher"
	"github.com/BackendStack21/polycipher-go/concept"
	"github.com/BackendStack21/polycipher-go/core"
	"github.com/BackendStack21/polycipher-go/sequence"
	"github.com/BackendStack21/polycipher-go/strategy"
	"github.com/BackendStack21/polycipher-go/table"
	"github.com/BackendStack21/polycipher-go/vigenere"
)

func mustAlphabet(t *testing.T, name string) sequence.Alphabet[rune] {
	t.Helper()
	a, err := core.GetAlphabet(name)
	if err != nil {
		t.Fatalf("GetAlphabet(%s) failed: %v", name, err)
	}
	return a
}

// TestCipherMatchesConcept checks that the spec front end and the concept
// algebra produce the same multi-key cipher.
func TestCipherMatchesConcept(t *testing.T) {
	a := mustAlphabet(t, core.LatinUpper)
	dog, err := concept.NewVigenere(a, []rune("DOG"))
	if err != nil {
		t.Fatal(err)
	}
	cat, err := concept.NewVigenere(a, []rune("CAT"))
	if err != nil {
		t.Fatal(err)
	}
	multi, err := concept.Combine(dog, cat)
	if err != nil {
		t.Fatalf("Combine failed: %v", err)
	}

	text := "THE QUICK BROWN FOX"
	got, err := cipher.Run(polycipher.Spec{
		Kind: polycipher.KindMultiVigenere,
		Keys: []string{"DOG", "CAT"},
		Text: text,
	}, polycipher.Encrypt)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if want := string(multi.Apply([]rune(text))); got != want {
		t.Errorf("cipher = %s, concept = %s", got, want)
	}
}

// TestClassicCipherMatchesConcept does the same for the single-key cipher.
func TestClassicCipherMatchesConcept(t *testing.T) {
	for _, name := range core.AlphabetNames() {
		t.Run(name, func(t *testing.T) {
			a := mustAlphabet(t, name)
			keyword := string([]rune{a.At(1), a.At(a.Len() - 1), a.At(a.Len() / 2)})
			c, err := concept.NewVigenere(a, []rune(keyword))
			if err != nil {
				t.Fatal(err)
			}
			text := string(a.Symbols())
			got, err := cipher.Run(polycipher.Spec{
				Kind:         polycipher.KindVigenere,
				AlphabetName: name,
				Keyword:      keyword,
				Text:         text,
			}, polycipher.Encrypt)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if want := string(c.Apply([]rune(text))); got != want {
				t.Errorf("cipher = %q, concept = %q", got, want)
			}
		})
	}
}

// TestTableMatrixAgree checks that a table and its exported matrix answer
// every lookup identically.
func TestTableMatrixAgree(t *testing.T) {
	a := mustAlphabet(t, core.Swedish)
	for _, step := range []int{1, 3, -2, 29} {
		for _, mode := range []polycipher.Mode{polycipher.ModeNormal, polycipher.ModeMirror} {
			tbl, err := table.NewRotationTable(a, step, mode)
			if err != nil {
				t.Fatalf("NewRotationTable(%d, %s) failed: %v", step, mode, err)
			}
			m := tbl.Matrix()
			for _, p := range a.Symbols() {
				for _, k := range a.Symbols() {
					if got, want := m.LookupSymbol(p, k), tbl.Lookup(p, k); got != want {
						t.Fatalf("step %d mode %s: matrix(%c,%c) = %c, table = %c", step, mode, p, k, got, want)
					}
				}
			}
		}
	}
}

// TestMatrixTransformChain applies the matrix transforms in sequence and
// checks the invariants survive.
func TestMatrixTransformChain(t *testing.T) {
	a, err := sequence.AlphabetFromString("abc", "ABC")
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := table.NewRotationTable(a, 1, polycipher.ModeNormal)
	if err != nil {
		t.Fatal(err)
	}
	m := tbl.Matrix()

	tr, err := m.Transpose()
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	if got := string(tr.Base()); got != "ABC" {
		t.Errorf("transposed base = %s, want ABC", got)
	}
	for _, p := range "ABC" {
		for _, k := range "ABC" {
			if got, want := tr.LookupSymbol(p, k), m.LookupSymbol(k, p); got != want {
				t.Errorf("transposed lookup(%c, %c) = %c, want %c", p, k, got, want)
			}
		}
	}
	back, err := tr.Transpose()
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	if !slices.EqualFunc(back.Rows(), m.Rows(), slices.Equal) {
		t.Errorf("double transpose = %q, want %q", back.Rows(), m.Rows())
	}

	chained := m.RotateRows(1).MirrorRows().ReorderRows(-1)
	if chained.RowCount() != m.RowCount() {
		t.Fatalf("row count changed: %d", chained.RowCount())
	}
	for i, row := range chained.Rows() {
		sorted := slices.Clone(row)
		slices.Sort(sorted)
		if string(sorted) != "ABC" {
			t.Errorf("row %d = %s is not a permutation", i, string(row))
		}
	}

	_, err = table.NewMatrix([]rune("ABC"), [][]rune{[]rune("AB")}, '?')
	if !errors.Is(err, polycipher.ErrShapeMismatch) {
		t.Errorf("ragged rows should fail with ErrShapeMismatch, got %v", err)
	}
}

// TestMultiStrategies checks every strategy round-trips through the engine.
func TestMultiStrategies(t *testing.T) {
	a := mustAlphabet(t, core.Alnum)
	pattern, err := strategy.Pattern([]int{2, 2, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	strategies := map[string]strategy.Strategy{
		"round-robin": strategy.RoundRobin,
		"pattern":     pattern,
		"static":      strategy.Static(1),
	}
	keys := [][]rune{[]rune("Dog"), []rune("Cat"), []rune("B1rd")}
	text := []rune("Pack my box with 5 dozen liquor jugs")

	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			m, err := vigenere.NewMulti(a, keys, strat, vigenere.TableOptions{
				Shuffle: true,
				Seed:    []byte("integration-seed"),
				Step:    7,
			})
			if err != nil {
				t.Fatalf("NewMulti failed: %v", err)
			}
			back := m.Decrypt(m.Encrypt(text))
			for i, r := range text {
				want := r
				if !a.Contains(r) {
					want = polycipher.UnknownSymbol
				}
				if back[i] != want {
					t.Fatalf("position %d: got %c, want %c", i, back[i], want)
				}
			}
		})
	}
}

// TestErrorTaxonomy checks that front end failures surface the sentinel errors.
func TestErrorTaxonomy(t *testing.T) {
	zero := 0
	cases := []struct {
		spec polycipher.Spec
		want error
	}{
		{polycipher.Spec{Kind: "unknown"}, polycipher.ErrUnknownCipher},
		{polycipher.Spec{Kind: polycipher.KindRot, Shift: &zero}, polycipher.ErrInvalidShift},
		{polycipher.Spec{Kind: polycipher.KindVigenere, Keyword: "Q"}, polycipher.ErrInvalidKeyword},
		{polycipher.Spec{Kind: polycipher.KindCaesar, AlphabetName: "nope"}, polycipher.ErrUnknownAlphabet},
		{polycipher.Spec{Kind: polycipher.KindMultiVigenere, Keys: []string{"AB"}, Strategy: polycipher.StrategyPattern, Pattern: []int{-1}}, polycipher.ErrInvalidStrategy},
		{polycipher.Spec{Kind: polycipher.KindCaesar, Alphabet: "ABA"}, polycipher.ErrDuplicateSymbol},
	}
	for _, tc := range cases {
		if _, err := cipher.Build(tc.spec); !errors.Is(err, tc.want) {
			t.Errorf("Build(%+v) = %v, want %v", tc.spec, err, tc.want)
		}
	}
}
