package utils

import (
	"crypto/rand"
	"errors"
	"io"
)

// MinSeedLength is the shortest accepted shuffle seed.
const MinSeedLength = 8

// RandReader is the entropy source behind SecureRandomBytes.
var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes.
// It uses crypto/rand, which relies on the operating system's CSPRNG.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := RandReader.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ValidateSeed rejects shuffle seeds that are too short or made of a single
// repeated byte.
func ValidateSeed(seed []byte) error {
	if len(seed) < MinSeedLength {
		return errors.New("seed must be at least 8 bytes")
	}
	for _, b := range seed[1:] {
		if b != seed[0] {
			return nil
		}
	}
	return errors.New("seed has low entropy: all bytes are identical")
}
