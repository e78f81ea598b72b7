// Package vigenere implements the classic single-key Vigenère cipher and the
// multi-key variant that alternates between several rotation tables.
package vigenere

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/rotation"
	"github.com/BackendStack21/polycipher-go/sequence"
)

// Classic is a single-key Vigenère cipher. The keyword is deduplicated
// (first occurrence wins) and each unique key symbol owns one row: the alphabet
// rotated so that the key symbol sits at index 0.
type Classic[T comparable] struct {
	alphabet sequence.Alphabet[T]
	key      []T
	rows     [][]T       // rows[i] belongs to key[i]
	columns  []map[T]int // inverse of rows, for decryption
}

// NewClassic builds the rotated rows for keyword over alphabet. Every keyword
// symbol must belong to the alphabet.
func NewClassic[T comparable](alphabet sequence.Alphabet[T], keyword []T) (*Classic[T], error) {
	if len(keyword) == 0 {
		return nil, fmt.Errorf("%w: keyword is empty", polycipher.ErrInvalidKeyword)
	}
	key := sequence.Dedupe(keyword)
	c := &Classic[T]{
		alphabet: alphabet,
		key:      key,
		rows:     make([][]T, len(key)),
		columns:  make([]map[T]int, len(key)),
	}
	symbols := alphabet.Symbols()
	for i, k := range key {
		idx := alphabet.IndexOf(k)
		if idx < 0 {
			return nil, fmt.Errorf("%w: symbol %v is not in alphabet %q", polycipher.ErrInvalidKeyword, k, alphabet.Name())
		}
		row, err := rotation.Rotate(symbols, -idx)
		if err != nil {
			return nil, err
		}
		c.rows[i] = row
		c.columns[i] = make(map[T]int, len(row))
		for col, v := range row {
			c.columns[i][v] = col
		}
	}
	return c, nil
}

// Alphabet returns the cipher alphabet.
func (c *Classic[T]) Alphabet() sequence.Alphabet[T] {
	return c.alphabet
}

// Key returns a copy of the deduplicated key.
func (c *Classic[T]) Key() []T {
	return append([]T(nil), c.key...)
}

// Encrypt substitutes every alphabet symbol through the row of the next key
// symbol. Symbols outside the alphabet become the unknown sentinel and do not
// consume a key symbol.
func (c *Classic[T]) Encrypt(text []T) []T {
	return c.run(text, func(row int, s T) T {
		return c.rows[row][c.alphabet.IndexOf(s)]
	})
}

// Decrypt finds each cipher symbol in the row of its key symbol and maps the
// column back to the alphabet.
func (c *Classic[T]) Decrypt(text []T) []T {
	return c.run(text, func(row int, s T) T {
		col, ok := c.columns[row][s]
		if !ok {
			return c.alphabet.Unknown()
		}
		return c.alphabet.At(col)
	})
}

func (c *Classic[T]) run(text []T, lookup func(row int, s T) T) []T {
	out := make([]T, len(text))
	cursor := 0
	for i, s := range text {
		if !c.alphabet.Contains(s) {
			out[i] = c.alphabet.Unknown()
			continue
		}
		out[i] = lookup(cursor%len(c.key), s)
		cursor++
	}
	return out
}
