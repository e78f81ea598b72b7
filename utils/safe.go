// Package utils provides hashing, randomness and safety helpers shared by the
// cipher packages. This file contains the allocation limits that bound every
// table and text the library builds.

package utils

import (
	"errors"
	"math"
)

// Maximum allowed sizes to keep table construction bounded.
const (
	// MaxAlphabetLength is the maximum number of symbols in an alphabet.
	MaxAlphabetLength = 1 << 16

	// MaxTextLength is the maximum number of symbols in a processed text.
	MaxTextLength = 1 << 24

	// MaxKeyCount is the maximum number of keys (and so tables) in a multi-key cipher.
	MaxKeyCount = 64

	// MaxKeyLength is the maximum number of symbols in one key.
	MaxKeyLength = 1 << 12

	// MaxTableCells is the maximum number of cells across all tables of a cipher.
	MaxTableCells = 1 << 26
)

var (
	// ErrOverflow indicates an integer overflow occurred.
	ErrOverflow = errors.New("integer overflow")

	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")

	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")
)

// SafeMultiply multiplies two non-negative integers and returns an error if overflow occurs.
func SafeMultiply(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, ErrInvalidLength
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// SafeMultiply3 multiplies three non-negative integers and returns an error if overflow occurs.
func SafeMultiply3(a, b, c int) (int, error) {
	ab, err := SafeMultiply(a, b)
	if err != nil {
		return 0, err
	}
	return SafeMultiply(ab, c)
}

// CheckLength validates that length is within [0, maxAllowed].
func CheckLength(length, maxAllowed int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	if length > maxAllowed {
		return ErrExceedsLimit
	}
	return nil
}

// CheckTableBudget validates that count tables of rows x width cells stay
// within MaxTableCells.
func CheckTableBudget(count, rows, width int) error {
	cells, err := SafeMultiply3(count, rows, width)
	if err != nil {
		return err
	}
	return CheckLength(cells, MaxTableCells)
}
