// Package sequence provides the immutable symbol containers used by every
// cipher: Sequence, an ordered non-empty list of symbols, and Alphabet, a named
// duplicate-free Sequence designated as the substitution domain.
package sequence

import (
	"fmt"
	"iter"
	"slices"

	polycipher "github.com/BackendStack21/polycipher-go"
)

// Sequence is an ordered, immutable, non-empty list of symbols.
// The zero value is an empty sequence and is only useful as a result placeholder.
type Sequence[T comparable] struct {
	data []T
}

// New creates a Sequence holding a copy of items.
func New[T comparable](items []T) (Sequence[T], error) {
	if len(items) == 0 {
		return Sequence[T]{}, polycipher.ErrEmptySequence
	}
	return Sequence[T]{data: slices.Clone(items)}, nil
}

// FromString splits s into a rune sequence.
func FromString(s string) (Sequence[rune], error) {
	return New([]rune(s))
}

// String joins a rune sequence back into a string.
func String(s Sequence[rune]) string {
	return string(s.data)
}

// Len returns the number of symbols.
func (s Sequence[T]) Len() int {
	return len(s.data)
}

// At returns the symbol at index i. It panics if i is out of range.
func (s Sequence[T]) At(i int) T {
	return s.data[i]
}

// Symbols returns a copy of the underlying symbols.
func (s Sequence[T]) Symbols() []T {
	return slices.Clone(s.data)
}

// All iterates over the symbols in order.
func (s Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (s Sequence[T]) IndexOf(v T) int {
	return slices.Index(s.data, v)
}

// Contains reports whether v occurs in the sequence.
func (s Sequence[T]) Contains(v T) bool {
	return s.IndexOf(v) >= 0
}

// Equal reports whether both sequences hold the same symbols in the same order.
func (s Sequence[T]) Equal(other Sequence[T]) bool {
	return slices.Equal(s.data, other.data)
}

// ValidateUnique returns ErrDuplicateSymbol if any symbol occurs twice.
func (s Sequence[T]) ValidateUnique() error {
	seen := make(map[T]struct{}, len(s.data))
	for _, v := range s.data {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w: %v", polycipher.ErrDuplicateSymbol, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Map applies fn to every symbol and returns the new sequence.
func (s Sequence[T]) Map(fn func(T) T) Sequence[T] {
	out := make([]T, len(s.data))
	for i, v := range s.data {
		out[i] = fn(v)
	}
	return Sequence[T]{data: out}
}

// Pipe threads the sequence through fns in order.
func (s Sequence[T]) Pipe(fns ...func(Sequence[T]) Sequence[T]) Sequence[T] {
	result := s
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Apply runs one of the static transforms over the sequence.
func (s Sequence[T]) Apply(t Transform) Sequence[T] {
	return Sequence[T]{data: Apply(t, s.data)}
}

// Dedupe removes repeated symbols, keeping first occurrences in order.
func Dedupe[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
