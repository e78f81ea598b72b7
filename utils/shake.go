package utils

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"sync"

	"golang.org/x/crypto/sha3"
)

const (
	// DomainShuffle separates alphabet shuffles from any other use of a seed.
	DomainShuffle = "polycipher-shuffle-v1"

	// DomainTableSeed separates per-table seeds derived from one user seed.
	DomainTableSeed = "polycipher-table-seed-v1"

	// DomainFingerprint separates table and alphabet fingerprints.
	DomainFingerprint = "polycipher-fingerprint-v1"
)

var shake256Pool = sync.Pool{
	New: func() interface{} {
		return sha3.NewShake256()
	},
}

// shake takes a pooled SHAKE256 state and absorbs the length-prefixed domain
// followed by parts. Call release once the output has been read.
// Panics if domain is longer than 255 bytes.
func shake(domain string, parts ...[]byte) (h sha3.ShakeHash, release func()) {
	if len(domain) > 255 {
		panic("domain string must be at most 255 bytes")
	}
	h = shake256Pool.Get().(sha3.ShakeHash)
	h.Write([]byte{byte(len(domain))})
	h.Write([]byte(domain))
	for _, p := range parts {
		h.Write(p)
	}
	return h, func() {
		h.Reset()
		shake256Pool.Put(h)
	}
}

// Shake256WithDomain returns outputLen bytes of SHAKE256 over the
// length-prefixed domain followed by data.
func Shake256WithDomain(domain string, data []byte, outputLen int) []byte {
	h, release := shake(domain, data)
	defer release()
	output := make([]byte, outputLen)
	_, _ = h.Read(output)
	return output
}

// DeriveSeed derives the 32-byte seed of item index from a parent seed.
func DeriveSeed(seed []byte, index int) []byte {
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], uint32(index))
	h, release := shake(DomainTableSeed, seed, idx[:])
	defer release()
	out := make([]byte, 32)
	_, _ = h.Read(out)
	return out
}

// HashParts returns the SHA3-256 digest of domain and parts. The domain and
// every part are length-prefixed, so no two part lists share an encoding.
func HashParts(domain string, parts ...[]byte) []byte {
	h := sha3.New256()
	var size [8]byte
	for _, p := range append([][]byte{[]byte(domain)}, parts...) {
		binary.LittleEndian.PutUint64(size[:], uint64(len(p)))
		h.Write(size[:])
		h.Write(p)
	}
	return h.Sum(nil)
}

// Fingerprint returns a short hex identifier for the given parts, used to tell
// tables and alphabets apart in CLI output.
func Fingerprint(parts ...[]byte) string {
	return hex.EncodeToString(HashParts(DomainFingerprint, parts...)[:8])
}

// Permutation returns a permutation of [0, n) derived from seed. The same seed
// always yields the same permutation. It runs a Fisher-Yates shuffle driven by
// the SHAKE256 stream of the seed, with rejection sampling so every index
// choice is unbiased.
func Permutation(seed []byte, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if n < 2 {
		return perm
	}

	h, release := shake(DomainShuffle, seed)
	defer release()

	buf := make([]byte, 4)
	for i := n - 1; i > 0; i-- {
		bound := uint32(i + 1)
		threshold := math.MaxUint32 - math.MaxUint32%bound
		for {
			_, _ = h.Read(buf)
			v := binary.LittleEndian.Uint32(buf)
			if v < threshold {
				j := int(v % bound)
				perm[i], perm[j] = perm[j], perm[i]
				break
			}
		}
	}
	return perm
}

// Shuffle returns a copy of items reordered by Permutation(seed, len(items)).
func Shuffle[T any](seed []byte, items []T) []T {
	perm := Permutation(seed, len(items))
	out := make([]T, len(items))
	for i, p := range perm {
		out[i] = items[p]
	}
	return out
}
