// Package polycipher implements classical polyalphabetic substitution ciphers
// (ROT/Caesar and the Vigenère family) over arbitrary, user-supplied alphabets.
// This package holds the shared types and the error taxonomy; the algorithms
// live in sub-packages.
package polycipher

// Version of the polycipher Go implementation.
const Version = "0.4.0"

// API summary:
//
// Rotation:
//   - rotation.NormalizeShift(shift, length) - Bound a shift, keeping its sign
//   - rotation.UniqueRotationCount(step, length) - Cycle length of a step
//   - rotation.ValidRotations(length) - Every step with its cycle length
//   - rotation.Generate(seq, step) - Lazy sequence of distinct rotations
//
// Tables:
//   - table.NewRotationTable(alphabet, step, mode) - Precomputed rotated rows
//   - table.NewMatrix(base, rows, unknown) - Generic 2-D permutation container
//
// Engines:
//   - rot.New(alphabet, shift) - ROT/Caesar substitution
//   - vigenere.NewClassic(alphabet, keyword) - Single-key Vigenère
//   - vigenere.NewMulti(alphabet, keys, strategy, opts) - Alternating Vigenère
//
// Composition:
//   - concept.NewRot / NewVigenere / NewMultiVigenere / NewArrangement
//   - concept.Combine(a, b) - Compose two concepts
//
// Front end:
//   - cipher.Build(spec) - Construct a Cipher from a Spec
//   - cipher.LoadSpec(path) - Read a Spec from a YAML or JSON file
//   - core.GetAlphabet(name) - Preset alphabets
//
// WARNING: none of these ciphers resist frequency analysis or brute force.
// Do not use them to protect anything.
