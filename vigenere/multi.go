package vigenere

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/sequence"
	"github.com/BackendStack21/polycipher-go/strategy"
	"github.com/BackendStack21/polycipher-go/table"
)

// Multi is a Vigenère cipher over several independently built rotation
// tables. At text position i the strategy picks the governing table, and the
// merged key (all keys concatenated) supplies symbol i mod len(merged).
//
// The key cursor and the table selector advance independently: the key
// symbol at a position does not depend on which table was chosen, so with a
// non round-robin strategy the two cycles drift out of phase. Every position
// consumes a key symbol, including positions holding unknown symbols.
type Multi[T comparable] struct {
	alphabet sequence.Alphabet[T]
	keys     [][]T
	merged   []T
	tables   []*table.RotationTable[T]
	strategy strategy.Strategy
}

// NewMulti builds one table per key with BuildTables. A nil strategy means
// round-robin.
func NewMulti[T comparable](alphabet sequence.Alphabet[T], keys [][]T, strat strategy.Strategy, opts TableOptions) (*Multi[T], error) {
	m := &Multi[T]{alphabet: alphabet, strategy: strat}
	if m.strategy == nil {
		m.strategy = strategy.RoundRobin
	}
	for i, k := range keys {
		if len(k) == 0 {
			return nil, fmt.Errorf("%w: key %d is empty", polycipher.ErrInvalidKeyword, i)
		}
		m.keys = append(m.keys, append([]T(nil), k...))
		m.merged = append(m.merged, k...)
	}
	tables, err := BuildTables(m.keys, alphabet, opts)
	if err != nil {
		return nil, err
	}
	m.tables = tables
	return m, nil
}

// NewMultiFromTables wires prebuilt tables, one per key.
func NewMultiFromTables[T comparable](alphabet sequence.Alphabet[T], keys [][]T, tables []*table.RotationTable[T], strat strategy.Strategy) (*Multi[T], error) {
	if len(tables) == 0 || len(tables) != len(keys) {
		return nil, fmt.Errorf("%w: %d keys for %d tables", polycipher.ErrInvalidKeyword, len(keys), len(tables))
	}
	m := &Multi[T]{alphabet: alphabet, strategy: strat, tables: append([]*table.RotationTable[T](nil), tables...)}
	if m.strategy == nil {
		m.strategy = strategy.RoundRobin
	}
	for i, k := range keys {
		if len(k) == 0 {
			return nil, fmt.Errorf("%w: key %d is empty", polycipher.ErrInvalidKeyword, i)
		}
		m.keys = append(m.keys, append([]T(nil), k...))
		m.merged = append(m.merged, k...)
	}
	return m, nil
}

// Alphabet returns the alphabet the tables were derived from.
func (m *Multi[T]) Alphabet() sequence.Alphabet[T] {
	return m.alphabet
}

// Tables returns the rotation tables in key order.
func (m *Multi[T]) Tables() []*table.RotationTable[T] {
	return append([]*table.RotationTable[T](nil), m.tables...)
}

// MergedKey returns a copy of the concatenated keys.
func (m *Multi[T]) MergedKey() []T {
	return append([]T(nil), m.merged...)
}

// TableAt returns the index of the table governing position.
func (m *Multi[T]) TableAt(position int) int {
	n := len(m.tables)
	idx := m.strategy(position, n) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// Encrypt looks up each symbol in the table chosen for its position with the
// key symbol of that position. A key or text symbol missing from the table's
// alphabet yields the unknown sentinel.
func (m *Multi[T]) Encrypt(text []T) []T {
	return m.run(text, func(t *table.RotationTable[T], s, k T) T {
		return t.Lookup(s, k)
	})
}

// Decrypt reverses Encrypt position by position.
func (m *Multi[T]) Decrypt(text []T) []T {
	return m.run(text, func(t *table.RotationTable[T], s, k T) T {
		return t.Reverse(s, k)
	})
}

func (m *Multi[T]) run(text []T, apply func(t *table.RotationTable[T], s, k T) T) []T {
	out := make([]T, len(text))
	for i, s := range text {
		k := m.merged[i%len(m.merged)]
		out[i] = apply(m.tables[m.TableAt(i)], s, k)
	}
	return out
}
