// Package strategy provides the alternation strategies that choose which of
// several rotation tables governs each text position in a multi-key cipher.
// Strategies are pure functions and carry no state between calls.
package strategy

import (
	"fmt"
	"slices"

	polycipher "github.com/BackendStack21/polycipher-go"
)

// Strategy maps a text position to a table index for tableCount tables.
type Strategy func(position, tableCount int) int

// RoundRobin cycles through the tables in order.
//
//	[RoundRobin(i, 3) for i in 0..5] = [0 1 2 0 1 2]
func RoundRobin(position, tableCount int) int {
	return position % tableCount
}

// Pattern selects tables from a caller-supplied list of indices, cycled by
// position. The pattern is copied.
func Pattern(indices []int) (Strategy, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", polycipher.ErrInvalidStrategy)
	}
	for _, idx := range indices {
		if idx < 0 {
			return nil, fmt.Errorf("%w: negative pattern index %d", polycipher.ErrInvalidStrategy, idx)
		}
	}
	pattern := slices.Clone(indices)
	return func(position, _ int) int {
		return pattern[position%len(pattern)]
	}, nil
}

// Static always selects index.
func Static(index int) Strategy {
	return func(int, int) int {
		return index
	}
}

// FromKind resolves a named strategy. pattern is used by StrategyPattern and
// index by StrategyStatic; the empty kind means round-robin.
func FromKind(kind polycipher.StrategyKind, pattern []int, index int) (Strategy, error) {
	switch kind {
	case "", polycipher.StrategyRoundRobin:
		return RoundRobin, nil
	case polycipher.StrategyPattern:
		return Pattern(pattern)
	case polycipher.StrategyStatic:
		if index < 0 {
			return nil, fmt.Errorf("%w: negative static index %d", polycipher.ErrInvalidStrategy, index)
		}
		return Static(index), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", polycipher.ErrInvalidStrategy, kind)
	}
}
