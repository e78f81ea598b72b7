// Package rot implements the ROT/Caesar substitution over any alphabet:
// every symbol moves shift positions forward in the alphabet, wrapping around.
package rot

import (
	"fmt"

	"github.com/BackendStack21/polycipher-go/rotation"
	"github.com/BackendStack21/polycipher-go/sequence"
)

// Rot is a fixed substitution built from one alphabet and one shift.
// It is immutable and safe for concurrent use.
type Rot[T comparable] struct {
	alphabet sequence.Alphabet[T]
	shift    int
	forward  map[T]T
	backward map[T]T
}

// New builds the substitution mapping alphabet[i] to alphabet[i+shift].
func New[T comparable](alphabet sequence.Alphabet[T], shift int) (*Rot[T], error) {
	symbols := alphabet.Symbols()
	// A left rotation by shift puts alphabet[i+shift] at index i.
	shifted, err := rotation.Rotate(symbols, -shift)
	if err != nil {
		return nil, fmt.Errorf("rot %q: %w", alphabet.Name(), err)
	}
	r := &Rot[T]{
		alphabet: alphabet,
		shift:    shift,
		forward:  make(map[T]T, len(symbols)),
		backward: make(map[T]T, len(symbols)),
	}
	for i, s := range symbols {
		r.forward[s] = shifted[i]
		r.backward[shifted[i]] = s
	}
	return r, nil
}

// Alphabet returns the substitution alphabet.
func (r *Rot[T]) Alphabet() sequence.Alphabet[T] {
	return r.alphabet
}

// Shift returns the configured shift.
func (r *Rot[T]) Shift() int {
	return r.shift
}

// Encrypt substitutes every symbol; symbols outside the alphabet become the
// unknown sentinel.
func (r *Rot[T]) Encrypt(text []T) []T {
	return substitute(text, r.forward, r.alphabet.Unknown())
}

// Decrypt reverses Encrypt.
func (r *Rot[T]) Decrypt(text []T) []T {
	return substitute(text, r.backward, r.alphabet.Unknown())
}

func substitute[T comparable](text []T, mapping map[T]T, unknown T) []T {
	out := make([]T, len(text))
	for i, s := range text {
		if v, ok := mapping[s]; ok {
			out[i] = v
		} else {
			out[i] = unknown
		}
	}
	return out
}
