package core

import (
	"errors"
	"strings"
	"testing"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/utils"
)

func TestGetAlphabet(t *testing.T) {
	tests := []struct {
		name  string
		len   int
		first rune
		last  rune
	}{
		{LatinUpper, 26, 'A', 'Z'},
		{LatinLower, 26, 'a', 'z'},
		{Latin, 52, 'A', 'z'},
		{Swedish, 29, 'A', 'Ö'},
		{Digits, 10, '0', '9'},
		{Alnum, 62, 'A', '9'},
		{Printable, 94, ' ', '~'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := GetAlphabet(tt.name)
			if err != nil {
				t.Fatalf("GetAlphabet(%s) failed: %v", tt.name, err)
			}
			if a.Len() != tt.len {
				t.Errorf("Expected %d symbols, got %d", tt.len, a.Len())
			}
			if a.At(0) != tt.first || a.At(a.Len()-1) != tt.last {
				t.Errorf("Expected %q..%q, got %q..%q", tt.first, tt.last, a.At(0), a.At(a.Len()-1))
			}
			if a.Name() != tt.name {
				t.Errorf("Expected name %s, got %s", tt.name, a.Name())
			}
		})
	}

	_, err := GetAlphabet("klingon")
	if !errors.Is(err, polycipher.ErrUnknownAlphabet) {
		t.Errorf("GetAlphabet(klingon) should fail with ErrUnknownAlphabet, got %v", err)
	}
}

func TestPrintableExcludesUnknownSymbol(t *testing.T) {
	a, err := GetAlphabet(Printable)
	if err != nil {
		t.Fatal(err)
	}
	if a.Contains(polycipher.UnknownSymbol) {
		t.Error("printable alphabet must not contain the unknown symbol")
	}
}

func TestSwedishExtendsLatinUpper(t *testing.T) {
	upper, err := GetAlphabet(LatinUpper)
	if err != nil {
		t.Fatal(err)
	}
	swedish, err := GetAlphabet(Swedish)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(swedish.Symbols()); got != string(upper.Symbols())+"ÅÄÖ" {
		t.Errorf("Expected latin-upper followed by ÅÄÖ, got %s", got)
	}
}

func TestAlphabetNames(t *testing.T) {
	names := AlphabetNames()
	if len(names) != 7 {
		t.Fatalf("Expected 7 presets, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
	for _, name := range names {
		if _, err := GetAlphabet(name); err != nil {
			t.Errorf("preset %s does not build: %v", name, err)
		}
	}
}

func TestResolveAlphabet(t *testing.T) {
	a, err := ResolveAlphabet(polycipher.Spec{Alphabet: "XYZ"})
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 3 || a.Name() != "custom" {
		t.Errorf("unexpected alphabet %s", a)
	}

	a, err = ResolveAlphabet(polycipher.Spec{AlphabetName: Swedish})
	if err != nil {
		t.Fatal(err)
	}
	if a.Name() != Swedish {
		t.Errorf("Expected swedish, got %s", a.Name())
	}

	a, err = ResolveAlphabet(polycipher.Spec{})
	if err != nil {
		t.Fatal(err)
	}
	if a.Name() != DefaultAlphabet {
		t.Errorf("Expected default alphabet, got %s", a.Name())
	}

	if _, err := ResolveAlphabet(polycipher.Spec{Alphabet: "AAB"}); !errors.Is(err, polycipher.ErrDuplicateSymbol) {
		t.Errorf("duplicate symbols should fail, got %v", err)
	}
}

func TestValidateSpec(t *testing.T) {
	valid := polycipher.Spec{Kind: polycipher.KindVigenere, AlphabetName: LatinUpper, Keyword: "KEY"}
	if err := ValidateSpec(valid); err != nil {
		t.Fatalf("ValidateSpec failed for valid spec: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*polycipher.Spec)
		target error
	}{
		{"unknown kind", func(s *polycipher.Spec) { s.Kind = "enigma" }, polycipher.ErrUnknownCipher},
		{"empty kind", func(s *polycipher.Spec) { s.Kind = "" }, polycipher.ErrUnknownCipher},
		{"both alphabets", func(s *polycipher.Spec) { s.Alphabet = "ABC" }, nil},
		{"unknown preset", func(s *polycipher.Spec) { s.AlphabetName = "klingon" }, polycipher.ErrUnknownAlphabet},
		{"huge alphabet", func(s *polycipher.Spec) {
			s.AlphabetName = ""
			s.Alphabet = strings.Repeat("x", utils.MaxAlphabetLength+1)
		}, utils.ErrExceedsLimit},
		{"long keyword", func(s *polycipher.Spec) { s.Keyword = strings.Repeat("K", utils.MaxKeyLength+1) }, utils.ErrExceedsLimit},
		{"too many keys", func(s *polycipher.Spec) { s.Keys = make([]string, utils.MaxKeyCount+1) }, utils.ErrExceedsLimit},
		{"long key", func(s *polycipher.Spec) { s.Keys = []string{strings.Repeat("K", utils.MaxKeyLength+1)} }, utils.ErrExceedsLimit},
		{"bad mode", func(s *polycipher.Spec) { s.Mode = "sideways" }, nil},
		{"bad strategy", func(s *polycipher.Spec) { s.Strategy = "random" }, polycipher.ErrInvalidStrategy},
		{"bad seed", func(s *polycipher.Spec) { s.Seed = "not-hex" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := valid
			tt.mutate(&spec)
			err := ValidateSpec(spec)
			if err == nil {
				t.Fatal("ValidateSpec should fail")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}
