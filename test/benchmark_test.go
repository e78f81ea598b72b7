package test

import (
	"strings"
	"testing"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/cipher"
	"github.com/BackendStack21/polycipher-go/core"
	"github.com/BackendStack21/polycipher-go/rotation"
	"github.com/BackendStack21/polycipher-go/sequence"
	"github.com/BackendStack21/polycipher-go/table"
	"github.com/BackendStack21/polycipher-go/vigenere"
)

var benchText = []rune(strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 32))

// =============================================================================
// Construction Benchmarks
// =============================================================================

func BenchmarkGenerate_Latin(b *testing.B) {
	symbols := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := rotation.Rotations(symbols, 3); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRotationTable_Printable(b *testing.B) {
	a, err := core.GetAlphabet(core.Printable)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := table.NewRotationTable(a, 1, polycipher.ModeNormal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildTables_Shuffled(b *testing.B) {
	a, err := core.GetAlphabet(core.Alnum)
	if err != nil {
		b.Fatal(err)
	}
	keys := [][]rune{[]rune("DOG"), []rune("CAT"), []rune("BIRD")}
	opts := vigenere.TableOptions{Shuffle: true, Seed: []byte("benchmark-seed")}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := vigenere.BuildTables(keys, a, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// =============================================================================
// Cipher Benchmarks
// =============================================================================

func BenchmarkClassic_Encrypt(b *testing.B) {
	a, err := core.GetAlphabet(core.LatinUpper)
	if err != nil {
		b.Fatal(err)
	}
	c, err := vigenere.NewClassic(a, []rune("LEMON"))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Encrypt(benchText)
	}
}

func BenchmarkMulti_Encrypt(b *testing.B) {
	a, err := core.GetAlphabet(core.LatinUpper)
	if err != nil {
		b.Fatal(err)
	}
	m, err := vigenere.NewMulti(a, [][]rune{[]rune("DOG"), []rune("CAT")}, nil, vigenere.TableOptions{})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Encrypt(benchText)
	}
}

func BenchmarkCipher_RoundTrip(b *testing.B) {
	c, err := cipher.Build(polycipher.Spec{Kind: polycipher.KindMultiVigenere, Keys: []string{"DOG", "CAT"}})
	if err != nil {
		b.Fatal(err)
	}
	seq, err := sequence.New(benchText)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Decrypt(c.Encrypt(seq))
	}
}
