package vigenere

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/sequence"
	"github.com/BackendStack21/polycipher-go/table"
	"github.com/BackendStack21/polycipher-go/utils"
	log "github.com/sirupsen/logrus"
)

// TableOptions controls how BuildTables lays out each table's alphabet.
type TableOptions struct {
	Step    int             // Rotation step, 0 means 1
	Mode    polycipher.Mode // ModeMirror reverses each table's alphabet
	Shuffle bool            // Permute each table's alphabet
	Seed    []byte          // Fixes the shuffle; a random seed is drawn when empty
}

// BuildTables creates one rotation table per key. Each table is built over its
// own copy of the alphabet, first shuffled (when requested) and then mirrored
// (in ModeMirror). Table i's alphabet is named "<alphabet>_k<i>".
//
// Shuffling without a seed draws one from crypto/rand, so the resulting tables
// differ between calls. Pass a Seed to make construction reproducible.
func BuildTables[T comparable](keys [][]T, alphabet sequence.Alphabet[T], opts TableOptions) ([]*table.RotationTable[T], error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no keys", polycipher.ErrInvalidKeyword)
	}
	if err := utils.CheckLength(len(keys), utils.MaxKeyCount); err != nil {
		return nil, fmt.Errorf("build tables: %d keys: %w", len(keys), err)
	}
	if err := utils.CheckTableBudget(len(keys), alphabet.Len(), alphabet.Len()); err != nil {
		return nil, fmt.Errorf("build tables: %w", err)
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("build tables: unknown mode %q", opts.Mode)
	}
	step := opts.Step
	if step == 0 {
		step = 1
	}

	seed := opts.Seed
	if opts.Shuffle {
		if len(seed) == 0 {
			var err error
			if seed, err = utils.SecureRandomBytes(32); err != nil {
				return nil, fmt.Errorf("build tables: draw shuffle seed: %w", err)
			}
			log.Debug("shuffling table alphabets with a fresh random seed")
		} else if err := utils.ValidateSeed(seed); err != nil {
			return nil, fmt.Errorf("build tables: %w", err)
		}
	}

	tables := make([]*table.RotationTable[T], len(keys))
	for i := range keys {
		var layout []func(sequence.Sequence[T]) sequence.Sequence[T]
		if opts.Shuffle {
			shuffled := utils.Shuffle(utils.DeriveSeed(seed, i), alphabet.Symbols())
			layout = append(layout, func(s sequence.Sequence[T]) sequence.Sequence[T] {
				return s.Map(func(v T) T { return shuffled[alphabet.IndexOf(v)] })
			})
		}
		if opts.Mode == polycipher.ModeMirror {
			layout = append(layout, mirror[T])
		}
		data := alphabet.Sequence().Pipe(layout...).Symbols()
		custom, err := alphabet.Derive(fmt.Sprintf("%s_k%d", alphabet.Name(), i), data)
		if err != nil {
			return nil, err
		}
		// The mode has already been applied to the alphabet itself.
		if tables[i], err = table.NewRotationTable(custom, step, polycipher.ModeNormal); err != nil {
			return nil, err
		}
	}
	return tables, nil
}

func mirror[T comparable](s sequence.Sequence[T]) sequence.Sequence[T] {
	return s.Apply(sequence.TransformReverse)
}
