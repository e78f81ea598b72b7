package sequence

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
)

// Alphabet is a named, duplicate-free Sequence used as a substitution domain.
// Unknown is the sentinel emitted when a lookup symbol is outside the alphabet.
type Alphabet[T comparable] struct {
	name    string
	seq     Sequence[T]
	index   map[T]int
	unknown T
}

// RuneRange is an inclusive range of code points.
type RuneRange struct {
	Start rune
	End   rune
}

// NewAlphabet validates symbols and builds an Alphabet.
func NewAlphabet[T comparable](name string, symbols []T, unknown T) (Alphabet[T], error) {
	seq, err := New(symbols)
	if err != nil {
		return Alphabet[T]{}, fmt.Errorf("alphabet %q: %w", name, err)
	}
	if err := seq.ValidateUnique(); err != nil {
		return Alphabet[T]{}, fmt.Errorf("alphabet %q: %w", name, err)
	}
	index := make(map[T]int, len(symbols))
	for i, v := range seq.data {
		index[v] = i
	}
	return Alphabet[T]{name: name, seq: seq, index: index, unknown: unknown}, nil
}

// AlphabetFromString builds a rune alphabet from the characters of s.
func AlphabetFromString(name, s string) (Alphabet[rune], error) {
	return NewAlphabet(name, []rune(s), polycipher.UnknownSymbol)
}

// AlphabetFromRanges builds a rune alphabet from inclusive code point ranges
// followed by extras.
func AlphabetFromRanges(name string, ranges []RuneRange, extras ...rune) (Alphabet[rune], error) {
	var symbols []rune
	for _, r := range ranges {
		if r.Start > r.End {
			return Alphabet[rune]{}, fmt.Errorf("alphabet %q: range start %U after end %U", name, r.Start, r.End)
		}
		for c := r.Start; c <= r.End; c++ {
			symbols = append(symbols, c)
		}
	}
	symbols = append(symbols, extras...)
	return NewAlphabet(name, symbols, polycipher.UnknownSymbol)
}

// WithExtras appends the extras not already present in base.
func WithExtras[T comparable](base []T, extras ...T) []T {
	return Dedupe(append(append([]T(nil), base...), extras...))
}

// Name returns the alphabet label.
func (a Alphabet[T]) Name() string {
	return a.name
}

// Sequence returns the underlying symbol sequence.
func (a Alphabet[T]) Sequence() Sequence[T] {
	return a.seq
}

// Symbols returns a copy of the symbols in order.
func (a Alphabet[T]) Symbols() []T {
	return a.seq.Symbols()
}

// Len returns the number of symbols.
func (a Alphabet[T]) Len() int {
	return a.seq.Len()
}

// At returns the symbol at index i.
func (a Alphabet[T]) At(i int) T {
	return a.seq.At(i)
}

// Unknown returns the sentinel for lookup misses.
func (a Alphabet[T]) Unknown() T {
	return a.unknown
}

// IndexOf returns the position of v in O(1), or -1.
func (a Alphabet[T]) IndexOf(v T) int {
	if i, ok := a.index[v]; ok {
		return i
	}
	return -1
}

// Contains reports whether v belongs to the alphabet.
func (a Alphabet[T]) Contains(v T) bool {
	_, ok := a.index[v]
	return ok
}

// SameSymbols reports whether both alphabets hold the same symbols in the same
// order. Such alphabets are interchangeable for lookups, whatever their names.
func (a Alphabet[T]) SameSymbols(other Alphabet[T]) bool {
	return a.seq.Equal(other.seq)
}

// Derive builds a sibling alphabet over a permutation of the same symbols,
// keeping the unknown sentinel.
func (a Alphabet[T]) Derive(name string, symbols []T) (Alphabet[T], error) {
	return NewAlphabet(name, symbols, a.unknown)
}

func (a Alphabet[T]) String() string {
	return fmt.Sprintf("Alphabet(%s, %d symbols)", a.name, a.seq.Len())
}
