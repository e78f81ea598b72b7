package cipher

import (
	"encoding/hex"
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/core"
	"github.com/BackendStack21/polycipher-go/rotation"
	"github.com/BackendStack21/polycipher-go/sequence"
	"github.com/BackendStack21/polycipher-go/strategy"
	"github.com/BackendStack21/polycipher-go/vigenere"
	log "github.com/sirupsen/logrus"
)

// Build validates spec and constructs the cipher it describes.
func Build(spec polycipher.Spec) (Cipher, error) {
	if err := core.ValidateSpec(spec); err != nil {
		return nil, err
	}
	alphabet, err := core.ResolveAlphabet(spec)
	if err != nil {
		return nil, err
	}

	var c Cipher
	switch spec.Kind {
	case polycipher.KindRot, polycipher.KindCaesar:
		c, err = buildRot(spec, alphabet)
	case polycipher.KindVigenere:
		c, err = buildVigenere(spec, alphabet)
	case polycipher.KindMultiVigenere:
		c, err = buildMulti(spec, alphabet)
	default:
		err = fmt.Errorf("%w: %q", polycipher.ErrUnknownCipher, spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"kind":     spec.Kind,
		"alphabet": alphabet.Name(),
		"symbols":  alphabet.Len(),
	}).Debug("built cipher")
	return c, nil
}

func buildRot(spec polycipher.Spec, alphabet sequence.Alphabet[rune]) (Cipher, error) {
	var shift int
	switch {
	case spec.Shift != nil:
		shift = *spec.Shift
	case spec.Kind == polycipher.KindCaesar:
		shift = polycipher.DefaultCaesarShift
	default:
		return nil, fmt.Errorf("%w: shift is required", polycipher.ErrInvalidShift)
	}
	effective, err := rotation.NormalizeShift(shift, alphabet.Len())
	if err != nil {
		return nil, err
	}
	if effective == 0 {
		return nil, fmt.Errorf("%w: shift %d is a multiple of the alphabet length %d", polycipher.ErrInvalidShift, shift, alphabet.Len())
	}
	return NewRotCipher(spec.Kind, alphabet, shift)
}

func buildVigenere(spec polycipher.Spec, alphabet sequence.Alphabet[rune]) (Cipher, error) {
	if len(sequence.Dedupe([]rune(spec.Keyword))) < 2 {
		return nil, fmt.Errorf("%w: keyword needs at least two distinct symbols", polycipher.ErrInvalidKeyword)
	}
	return NewClassicVigenereCipher(alphabet, spec.Keyword)
}

func buildMulti(spec polycipher.Spec, alphabet sequence.Alphabet[rune]) (Cipher, error) {
	if len(spec.Keys) == 0 {
		return nil, fmt.Errorf("%w: at least one key is required", polycipher.ErrInvalidKeyword)
	}
	strat, err := strategy.FromKind(spec.Strategy, spec.Pattern, spec.StaticIndex)
	if err != nil {
		return nil, err
	}
	seed, err := hex.DecodeString(spec.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed must be hex: %w", err)
	}
	keys := make([][]rune, len(spec.Keys))
	for i, k := range spec.Keys {
		keys[i] = []rune(k)
	}
	m, err := vigenere.NewMulti(alphabet, keys, strat, vigenere.TableOptions{
		Step:    spec.Step,
		Mode:    spec.Mode,
		Shuffle: spec.Shuffle,
		Seed:    seed,
	})
	if err != nil {
		return nil, err
	}
	return NewMultiVigenereCipher(m), nil
}

// Run builds the cipher of spec and applies it to spec.Text in direction.
func Run(spec polycipher.Spec, direction polycipher.Direction) (string, error) {
	c, err := Build(spec)
	if err != nil {
		return "", err
	}
	return Apply(c, spec.Text, direction)
}

// Apply runs c over text in direction. Empty text fails with ErrEmptySequence.
func Apply(c Cipher, text string, direction polycipher.Direction) (string, error) {
	if direction != polycipher.Encrypt && direction != polycipher.Decrypt {
		return "", fmt.Errorf("unknown direction %q", direction)
	}
	seq, err := sequence.FromString(text)
	if err != nil {
		return "", fmt.Errorf("%s: %w", direction, err)
	}
	if direction == polycipher.Encrypt {
		return sequence.String(c.Encrypt(seq)), nil
	}
	return sequence.String(c.Decrypt(seq)), nil
}
