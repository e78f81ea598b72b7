package concept

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/strategy"
	"github.com/BackendStack21/polycipher-go/vigenere"
	log "github.com/sirupsen/logrus"
)

// Combine merges two concepts.
//
//   - Two VIGENERE engine concepts become a MULTI_VIGENERE concept over a's
//     alphabet with one table per key and round-robin alternation.
//   - Any other pair from the same family is a conflict.
//   - Concepts from different families compose: the result applies a, then b,
//     and is named "<a>_<b>".
func Combine[T comparable](a, b *Concept[T]) (*Concept[T], error) {
	fields := log.Fields{
		"left":         a.name,
		"right":        b.name,
		"left_family":  a.family,
		"right_family": b.family,
	}

	if a.family == polycipher.FamilyEngine && b.family == polycipher.FamilyEngine &&
		a.name == polycipher.NameVigenere && b.name == polycipher.NameVigenere {
		pa, okA := a.params.(VigenereParams[T])
		pb, okB := b.params.(VigenereParams[T])
		if !okA || !okB {
			log.WithFields(fields).Debug("vigenere concept without key metadata")
			return nil, fmt.Errorf("combine %s with %s: %w", a.name, b.name, polycipher.ErrMissingMetadata)
		}
		if !pa.Alphabet.SameSymbols(pb.Alphabet) {
			log.WithFields(fields).Debugf("alphabets differ, using %q", pa.Alphabet.Name())
		}
		log.WithFields(fields).Debug("merging vigenere concepts into a multi-key concept")
		return NewMultiVigenere(pa.Alphabet, [][]T{pa.Key, pb.Key}, strategy.RoundRobin, vigenere.TableOptions{})
	}

	if a.family == b.family {
		log.WithFields(fields).Debug("rejecting same-family combination")
		return nil, fmt.Errorf("combine %s with %s (%s): %w", a.name, b.name, a.family, polycipher.ErrConceptualConflict)
	}

	log.WithFields(fields).Debug("composing concepts")
	first, second := a.transform, b.transform
	return New(a.name+"_"+b.name, polycipher.FamilyComposite, func(text []T) []T {
		return second(first(text))
	}, Params[T](CompositeParams[T]{First: a, Second: b})), nil
}
