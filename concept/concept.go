// Package concept models cipher concepts: named transforms that belong to a
// family and carry the typed parameters they were built from. Concepts can be
// combined into new concepts with Combine.
package concept

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/rot"
	"github.com/BackendStack21/polycipher-go/sequence"
	"github.com/BackendStack21/polycipher-go/strategy"
	"github.com/BackendStack21/polycipher-go/vigenere"
)

// Transform maps a symbol slice to a new slice of the same length.
type Transform[T comparable] func(text []T) []T

// Params is the construction metadata of a concept. The concrete type tells
// which factory built the concept.
type Params[T comparable] interface {
	paramsFamily() polycipher.Family
}

// RotParams describe a ROT concept.
type RotParams[T comparable] struct {
	Shift    int
	Alphabet sequence.Alphabet[T]
}

// VigenereParams describe a classic single-key Vigenère concept.
type VigenereParams[T comparable] struct {
	Key      []T
	Alphabet sequence.Alphabet[T]
}

// MultiVigenereParams describe a multi-key Vigenère concept.
type MultiVigenereParams[T comparable] struct {
	Keys     [][]T
	Alphabet sequence.Alphabet[T]
	Strategy strategy.Strategy
	Options  vigenere.TableOptions
}

// ArrangementParams describe a static sequence rearrangement.
type ArrangementParams[T comparable] struct {
	Transform sequence.Transform
}

// CompositeParams hold the two concepts of a composite, applied First then Second.
type CompositeParams[T comparable] struct {
	First  *Concept[T]
	Second *Concept[T]
}

func (RotParams[T]) paramsFamily() polycipher.Family {
	return polycipher.FamilyTransform
}

func (VigenereParams[T]) paramsFamily() polycipher.Family {
	return polycipher.FamilyEngine
}

func (MultiVigenereParams[T]) paramsFamily() polycipher.Family {
	return polycipher.FamilyEngine
}

func (ArrangementParams[T]) paramsFamily() polycipher.Family {
	return polycipher.FamilyArrangement
}

func (CompositeParams[T]) paramsFamily() polycipher.Family {
	return polycipher.FamilyComposite
}

// Concept is an immutable named transform.
type Concept[T comparable] struct {
	name      string
	family    polycipher.Family
	transform Transform[T]
	params    Params[T]
}

// New builds a concept from its parts. params may be nil for ad hoc concepts.
func New[T comparable](name string, family polycipher.Family, transform Transform[T], params Params[T]) *Concept[T] {
	return &Concept[T]{name: name, family: family, transform: transform, params: params}
}

// Name returns the concept name.
func (c *Concept[T]) Name() string {
	return c.name
}

// Family returns the concept family.
func (c *Concept[T]) Family() polycipher.Family {
	return c.family
}

// Params returns the construction metadata, or nil.
func (c *Concept[T]) Params() Params[T] {
	return c.params
}

// Apply runs the transform over text.
func (c *Concept[T]) Apply(text []T) []T {
	return c.transform(text)
}

func (c *Concept[T]) String() string {
	return fmt.Sprintf("Concept(%s, %s)", c.name, c.family)
}

// NewRot builds the ROT concept shifting every alphabet symbol by shift.
// ROT is a plain transform, so it composes with the Vigenère engines.
func NewRot[T comparable](alphabet sequence.Alphabet[T], shift int) (*Concept[T], error) {
	r, err := rot.New(alphabet, shift)
	if err != nil {
		return nil, err
	}
	params := RotParams[T]{Shift: r.Shift(), Alphabet: alphabet}
	return New(polycipher.NameRot, params.paramsFamily(), r.Encrypt, Params[T](params)), nil
}

// NewVigenere builds the classic Vigenère encryption concept for keyword.
func NewVigenere[T comparable](alphabet sequence.Alphabet[T], keyword []T) (*Concept[T], error) {
	v, err := vigenere.NewClassic(alphabet, keyword)
	if err != nil {
		return nil, err
	}
	return New(polycipher.NameVigenere, polycipher.FamilyEngine, v.Encrypt, Params[T](VigenereParams[T]{
		Key:      v.Key(),
		Alphabet: alphabet,
	})), nil
}

// NewMultiVigenere builds the multi-key Vigenère encryption concept.
func NewMultiVigenere[T comparable](alphabet sequence.Alphabet[T], keys [][]T, strat strategy.Strategy, opts vigenere.TableOptions) (*Concept[T], error) {
	m, err := vigenere.NewMulti(alphabet, keys, strat, opts)
	if err != nil {
		return nil, err
	}
	if strat == nil {
		strat = strategy.RoundRobin
	}
	owned := make([][]T, len(keys))
	for i, k := range keys {
		owned[i] = append([]T(nil), k...)
	}
	return New(polycipher.NameMultiVigenere, polycipher.FamilyEngine, m.Encrypt, Params[T](MultiVigenereParams[T]{
		Keys:     owned,
		Alphabet: alphabet,
		Strategy: strat,
		Options:  opts,
	})), nil
}

// NewArrangement builds a concept that rearranges the whole text with t.
func NewArrangement[T comparable](t sequence.Transform) *Concept[T] {
	name := polycipher.NameIdentity
	if t == sequence.TransformReverse {
		name = polycipher.NameReverse
	}
	return New(name, polycipher.FamilyArrangement, func(text []T) []T {
		return sequence.Apply(t, text)
	}, Params[T](ArrangementParams[T]{Transform: t}))
}
