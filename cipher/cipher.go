// Package cipher is the front end of the library: it turns a declarative
// polycipher.Spec into a ready Cipher over rune text.
package cipher

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/rot"
	"github.com/BackendStack21/polycipher-go/sequence"
	"github.com/BackendStack21/polycipher-go/vigenere"
)

// Cipher encrypts and decrypts rune sequences. Implementations are immutable
// and safe for concurrent use.
type Cipher interface {
	Kind() polycipher.CipherKind
	Alphabet() sequence.Alphabet[rune]
	Encrypt(text sequence.Sequence[rune]) sequence.Sequence[rune]
	Decrypt(text sequence.Sequence[rune]) sequence.Sequence[rune]
}

// RotCipher shifts every symbol by a fixed amount. It serves both KindRot and
// KindCaesar.
type RotCipher struct {
	kind polycipher.CipherKind
	rot  *rot.Rot[rune]
}

// NewRotCipher builds a ROT cipher of the given kind.
func NewRotCipher(kind polycipher.CipherKind, alphabet sequence.Alphabet[rune], shift int) (*RotCipher, error) {
	r, err := rot.New(alphabet, shift)
	if err != nil {
		return nil, err
	}
	return &RotCipher{kind: kind, rot: r}, nil
}

func (c *RotCipher) Kind() polycipher.CipherKind {
	return c.kind
}

func (c *RotCipher) Alphabet() sequence.Alphabet[rune] {
	return c.rot.Alphabet()
}

func (c *RotCipher) Shift() int {
	return c.rot.Shift()
}

func (c *RotCipher) Encrypt(text sequence.Sequence[rune]) sequence.Sequence[rune] {
	return mustSequence(c.rot.Encrypt(text.Symbols()))
}

func (c *RotCipher) Decrypt(text sequence.Sequence[rune]) sequence.Sequence[rune] {
	return mustSequence(c.rot.Decrypt(text.Symbols()))
}

// ClassicVigenereCipher is the single-key Vigenère cipher.
type ClassicVigenereCipher struct {
	v *vigenere.Classic[rune]
}

// NewClassicVigenereCipher builds a classic Vigenère cipher for keyword.
func NewClassicVigenereCipher(alphabet sequence.Alphabet[rune], keyword string) (*ClassicVigenereCipher, error) {
	v, err := vigenere.NewClassic(alphabet, []rune(keyword))
	if err != nil {
		return nil, err
	}
	return &ClassicVigenereCipher{v: v}, nil
}

func (c *ClassicVigenereCipher) Kind() polycipher.CipherKind {
	return polycipher.KindVigenere
}

func (c *ClassicVigenereCipher) Alphabet() sequence.Alphabet[rune] {
	return c.v.Alphabet()
}

func (c *ClassicVigenereCipher) Key() string {
	return string(c.v.Key())
}

func (c *ClassicVigenereCipher) Encrypt(text sequence.Sequence[rune]) sequence.Sequence[rune] {
	return mustSequence(c.v.Encrypt(text.Symbols()))
}

func (c *ClassicVigenereCipher) Decrypt(text sequence.Sequence[rune]) sequence.Sequence[rune] {
	return mustSequence(c.v.Decrypt(text.Symbols()))
}

// MultiVigenereCipher alternates between one rotation table per key.
type MultiVigenereCipher struct {
	m *vigenere.Multi[rune]
}

// NewMultiVigenereCipher wraps a multi-key engine.
func NewMultiVigenereCipher(m *vigenere.Multi[rune]) *MultiVigenereCipher {
	return &MultiVigenereCipher{m: m}
}

func (c *MultiVigenereCipher) Kind() polycipher.CipherKind {
	return polycipher.KindMultiVigenere
}

func (c *MultiVigenereCipher) Alphabet() sequence.Alphabet[rune] {
	return c.m.Alphabet()
}

func (c *MultiVigenereCipher) Engine() *vigenere.Multi[rune] {
	return c.m
}

func (c *MultiVigenereCipher) Encrypt(text sequence.Sequence[rune]) sequence.Sequence[rune] {
	return mustSequence(c.m.Encrypt(text.Symbols()))
}

func (c *MultiVigenereCipher) Decrypt(text sequence.Sequence[rune]) sequence.Sequence[rune] {
	return mustSequence(c.m.Decrypt(text.Symbols()))
}

// mustSequence wraps engine output. Engines preserve length, so only the zero
// Sequence produces empty output, and it maps to the zero Sequence.
func mustSequence(out []rune) sequence.Sequence[rune] {
	if len(out) == 0 {
		return sequence.Sequence[rune]{}
	}
	s, err := sequence.New(out)
	if err != nil {
		panic(fmt.Sprintf("cipher: %v", err))
	}
	return s
}
