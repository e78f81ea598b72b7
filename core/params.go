// Package core provides the preset alphabets and the validation of cipher
// specs shared by the library front end and the CLI.
package core

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/sequence"
	"github.com/BackendStack21/polycipher-go/utils"
)

// Preset alphabet names.
const (
	LatinUpper = "latin-upper"
	LatinLower = "latin-lower"
	Latin      = "latin"
	Swedish    = "swedish"
	Digits     = "digits"
	Alnum      = "alnum"
	Printable  = "printable"
)

// DefaultAlphabet is used when a spec names no alphabet.
const DefaultAlphabet = LatinUpper

var (
	upper  = sequence.RuneRange{Start: 'A', End: 'Z'}
	lower  = sequence.RuneRange{Start: 'a', End: 'z'}
	digits = sequence.RuneRange{Start: '0', End: '9'}
)

var presets = map[string]func() (sequence.Alphabet[rune], error){
	LatinUpper: func() (sequence.Alphabet[rune], error) {
		return sequence.AlphabetFromRanges(LatinUpper, []sequence.RuneRange{upper})
	},
	LatinLower: func() (sequence.Alphabet[rune], error) {
		return sequence.AlphabetFromRanges(LatinLower, []sequence.RuneRange{lower})
	},
	Latin: func() (sequence.Alphabet[rune], error) {
		return sequence.AlphabetFromRanges(Latin, []sequence.RuneRange{upper, lower})
	},
	Swedish: func() (sequence.Alphabet[rune], error) {
		base, err := sequence.AlphabetFromRanges(LatinUpper, []sequence.RuneRange{upper})
		if err != nil {
			return sequence.Alphabet[rune]{}, err
		}
		return sequence.NewAlphabet(Swedish, sequence.WithExtras(base.Symbols(), 'Å', 'Ä', 'Ö'), polycipher.UnknownSymbol)
	},
	Digits: func() (sequence.Alphabet[rune], error) {
		return sequence.AlphabetFromRanges(Digits, []sequence.RuneRange{digits})
	},
	Alnum: func() (sequence.Alphabet[rune], error) {
		return sequence.AlphabetFromRanges(Alnum, []sequence.RuneRange{upper, lower, digits})
	},
	// Printable ASCII without '?', which is reserved for unknown symbols.
	Printable: func() (sequence.Alphabet[rune], error) {
		return sequence.AlphabetFromRanges(Printable, []sequence.RuneRange{
			{Start: ' ', End: '>'},
			{Start: '@', End: '~'},
		})
	},
}

// AlphabetNames returns the preset names in sorted order.
func AlphabetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetAlphabet returns the preset alphabet called name.
func GetAlphabet(name string) (sequence.Alphabet[rune], error) {
	build, ok := presets[name]
	if !ok {
		return sequence.Alphabet[rune]{}, fmt.Errorf("%w: %q", polycipher.ErrUnknownAlphabet, name)
	}
	return build()
}

// ResolveAlphabet returns the alphabet of spec: the literal Alphabet when set,
// otherwise the preset AlphabetName, otherwise DefaultAlphabet.
func ResolveAlphabet(spec polycipher.Spec) (sequence.Alphabet[rune], error) {
	if spec.Alphabet != "" {
		return sequence.AlphabetFromString("custom", spec.Alphabet)
	}
	if spec.AlphabetName != "" {
		return GetAlphabet(spec.AlphabetName)
	}
	return GetAlphabet(DefaultAlphabet)
}

// ValidateSpec checks the fields of spec that do not depend on the cipher
// being constructed: the kind, the alphabet source, sizes, mode, strategy and
// seed encoding.
func ValidateSpec(spec polycipher.Spec) error {
	switch spec.Kind {
	case polycipher.KindRot, polycipher.KindCaesar, polycipher.KindVigenere, polycipher.KindMultiVigenere:
	default:
		return fmt.Errorf("%w: %q", polycipher.ErrUnknownCipher, spec.Kind)
	}
	if spec.Alphabet != "" && spec.AlphabetName != "" {
		return errors.New("alphabet and alphabet_name are mutually exclusive")
	}
	if spec.Alphabet != "" {
		if err := utils.CheckLength(utf8.RuneCountInString(spec.Alphabet), utils.MaxAlphabetLength); err != nil {
			return fmt.Errorf("alphabet: %w", err)
		}
	}
	if spec.AlphabetName != "" {
		if _, ok := presets[spec.AlphabetName]; !ok {
			return fmt.Errorf("%w: %q", polycipher.ErrUnknownAlphabet, spec.AlphabetName)
		}
	}
	if len(spec.Text) > utils.MaxTextLength {
		return fmt.Errorf("text: %w", utils.ErrExceedsLimit)
	}
	if len(spec.Keyword) > utils.MaxKeyLength {
		return fmt.Errorf("keyword: %w", utils.ErrExceedsLimit)
	}
	if len(spec.Keys) > utils.MaxKeyCount {
		return fmt.Errorf("keys: %w", utils.ErrExceedsLimit)
	}
	for i, k := range spec.Keys {
		if len(k) > utils.MaxKeyLength {
			return fmt.Errorf("key %d: %w", i, utils.ErrExceedsLimit)
		}
	}
	if !spec.Mode.Valid() {
		return fmt.Errorf("unknown mode %q", spec.Mode)
	}
	switch spec.Strategy {
	case "", polycipher.StrategyRoundRobin, polycipher.StrategyPattern, polycipher.StrategyStatic:
	default:
		return fmt.Errorf("%w: unknown kind %q", polycipher.ErrInvalidStrategy, spec.Strategy)
	}
	if spec.Seed != "" {
		if _, err := hex.DecodeString(spec.Seed); err != nil {
			return fmt.Errorf("seed must be hex: %w", err)
		}
	}
	return nil
}
