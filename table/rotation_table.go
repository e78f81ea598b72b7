// Package table turns rotations into lookup structures: RotationTable, built
// from a base alphabet and a step, and Matrix, a generic container for rows
// coming from any source.
package table

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/rotation"
	"github.com/BackendStack21/polycipher-go/sequence"
	log "github.com/sirupsen/logrus"
)

// RotationTable holds the distinct rotations of a base alphabet for one step.
// Row i is the alphabet rotated by i*step, so row 0 is the alphabet itself
// (before the mode transform). A table is immutable and safe for concurrent reads.
type RotationTable[T comparable] struct {
	base  sequence.Alphabet[T]
	step  int
	mode  polycipher.Mode
	rows  [][]T
	index []map[T]int // per-row symbol -> column, for Reverse
}

// NewRotationTable builds the table of base rotations for step. Mode ModeMirror
// reverses every row once it has been generated.
func NewRotationTable[T comparable](base sequence.Alphabet[T], step int, mode polycipher.Mode) (*RotationTable[T], error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("rotation table: unknown mode %q", mode)
	}
	if mode == "" {
		mode = polycipher.ModeNormal
	}
	gen, err := rotation.Generate(base.Symbols(), step)
	if err != nil {
		return nil, fmt.Errorf("rotation table %q: %w", base.Name(), err)
	}
	transform := sequence.TransformForMode(mode)

	t := &RotationTable[T]{base: base, step: step, mode: mode}
	for row := range gen {
		row = sequence.Apply(transform, row)
		idx := make(map[T]int, len(row))
		for col, v := range row {
			idx[v] = col
		}
		t.rows = append(t.rows, row)
		t.index = append(t.index, idx)
	}

	log.WithFields(log.Fields{
		"alphabet": base.Name(),
		"step":     step,
		"mode":     mode,
		"rows":     len(t.rows),
	}).Debug("built rotation table")
	return t, nil
}

// Base returns the alphabet the table was built from.
func (t *RotationTable[T]) Base() sequence.Alphabet[T] {
	return t.base
}

// Step returns the rotation step.
func (t *RotationTable[T]) Step() int {
	return t.step
}

// Mode returns the row transform mode.
func (t *RotationTable[T]) Mode() polycipher.Mode {
	return t.mode
}

// CycleLength returns the number of rows.
func (t *RotationTable[T]) CycleLength() int {
	return len(t.rows)
}

// Row returns a copy of row index, wrapping modulo the row count.
func (t *RotationTable[T]) Row(index int) []T {
	return append([]T(nil), t.rows[wrap(index, len(t.rows))]...)
}

// Rows returns a copy of every row.
func (t *RotationTable[T]) Rows() [][]T {
	out := make([][]T, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}
	return out
}

// Lookup returns the cell at the row selected by key and the column selected
// by plain. Symbols outside the base alphabet yield the unknown sentinel.
func (t *RotationTable[T]) Lookup(plain, key T) T {
	row := t.base.IndexOf(key)
	col := t.base.IndexOf(plain)
	if row < 0 || col < 0 {
		return t.base.Unknown()
	}
	return t.rows[row%len(t.rows)][col]
}

// Reverse inverts Lookup: it finds the column of cipher in the row selected by
// key and returns the base symbol at that column.
func (t *RotationTable[T]) Reverse(cipher, key T) T {
	row := t.base.IndexOf(key)
	if row < 0 {
		return t.base.Unknown()
	}
	col, ok := t.index[row%len(t.rows)][cipher]
	if !ok {
		return t.base.Unknown()
	}
	return t.base.At(col)
}

// Matrix exports the table as a Matrix over the same base symbols.
func (t *RotationTable[T]) Matrix() *Matrix[T] {
	m, err := NewMatrix(t.base.Symbols(), t.Rows(), t.base.Unknown())
	if err != nil {
		// Every row is a permutation of the base, so the shape always matches.
		panic(err)
	}
	return m
}

func wrap(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}
