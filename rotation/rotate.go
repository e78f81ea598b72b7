package rotation

import (
	"fmt"
	"iter"

	polycipher "github.com/BackendStack21/polycipher-go"
	log "github.com/sirupsen/logrus"
)

// Rotate returns a copy of seq rotated to the right by shift; negative shifts
// rotate left.
//
//	Rotate([A B C], 1)  = [C A B]
//	Rotate([A B C], -1) = [B C A]
func Rotate[T any](seq []T, shift int) ([]T, error) {
	if len(seq) == 0 {
		return nil, polycipher.ErrEmptySequence
	}
	k, err := NormalizeShift(shift, len(seq))
	if err != nil {
		return nil, err
	}
	return rotateRight(seq, k), nil
}

// rotateRight assumes a non-empty seq.
func rotateRight[T any](seq []T, k int) []T {
	n := len(seq)
	k = mod(k, n)
	out := make([]T, n)
	copy(out, seq[n-k:])
	copy(out[k:], seq[:n-k])
	return out
}

// Generate returns the distinct rotations of seq obtained by stepping the
// offset by step: offsets 0, s, 2s, ... (mod len(seq)) until an offset repeats.
// The sequence is lazy and restartable; every range over it starts again at
// offset 0. A full enumeration yields exactly UniqueRotationCount(step, len(seq))
// rotations, and a mismatch is logged as a warning.
func Generate[T any](seq []T, step int) (iter.Seq[[]T], error) {
	if len(seq) == 0 {
		return nil, polycipher.ErrEmptySequence
	}
	if step == 0 {
		return nil, polycipher.ErrInvalidStep
	}
	n := len(seq)
	normStep, err := NormalizeShift(step, n)
	if err != nil {
		return nil, err
	}
	expected, err := UniqueRotationCount(step, n)
	if err != nil {
		return nil, err
	}
	base := append([]T(nil), seq...)

	return func(yield func([]T) bool) {
		seen := make(map[int]struct{}, expected)
		current := 0
		for {
			if _, ok := seen[current]; ok {
				break
			}
			seen[current] = struct{}{}
			if !yield(rotateRight(base, current)) {
				return
			}
			current = mod(current+normStep, n)
		}
		checkCount(expected, len(seen), n, step)
	}, nil
}

// Rotations collects every rotation produced by Generate.
func Rotations[T any](seq []T, step int) ([][]T, error) {
	gen, err := Generate(seq, step)
	if err != nil {
		return nil, fmt.Errorf("rotations: %w", err)
	}
	var rows [][]T
	for row := range gen {
		rows = append(rows, row)
	}
	return rows, nil
}

func checkCount(expected, generated, length, step int) {
	if generated == expected {
		return
	}
	log.WithFields(log.Fields{
		"expected":  expected,
		"generated": generated,
		"length":    length,
		"step":      step,
	}).Warn("rotation generator produced an unexpected number of unique rotations")
}
