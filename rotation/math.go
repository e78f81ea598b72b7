// Package rotation implements the cyclic-rotation engine: shift normalization,
// cycle-length arithmetic and the generator of distinct rotations.
package rotation

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
)

// GCD returns the greatest common divisor of |a| and |b|.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// NormalizeShift bounds shift to the length of a sequence while keeping its sign:
// non-negative shifts land in [0, length), negative ones in (-length, 0].
//
//	NormalizeShift(4, 3)  = 1
//	NormalizeShift(-2, 3) = -2
//	NormalizeShift(-4, 3) = -1
func NormalizeShift(shift, length int) (int, error) {
	if length <= 0 {
		return 0, fmt.Errorf("normalize shift: %w (got %d)", polycipher.ErrInvalidLength, length)
	}
	r := mod(shift, length)
	if shift < 0 && r != 0 {
		r -= length
	}
	return r, nil
}

// UniqueRotationCount returns the number of distinct offsets visited when
// stepping through a cycle of the given length: length / gcd(|step|, length).
//
//	UniqueRotationCount(3, 10) = 10
//	UniqueRotationCount(2, 6)  = 3
func UniqueRotationCount(step, length int) (int, error) {
	if step == 0 {
		return 0, polycipher.ErrInvalidStep
	}
	if length <= 0 {
		return 0, fmt.Errorf("unique rotation count: %w (got %d)", polycipher.ErrInvalidLength, length)
	}
	return length / GCD(mod(step, length), length), nil
}

// ValidRotations maps every step in [1, length) to its cycle length.
//
//	ValidRotations(6) = {1: 6, 2: 3, 3: 2, 4: 3, 5: 6}
func ValidRotations(length int) (map[int]int, error) {
	if length <= 0 {
		return nil, fmt.Errorf("valid rotations: %w (got %d)", polycipher.ErrInvalidLength, length)
	}
	result := make(map[int]int, length-1)
	for step := 1; step < length; step++ {
		result[step] = length / GCD(step, length)
	}
	return result, nil
}

// FullCycleSteps returns, in increasing order, the steps in [1, length) whose
// rotation cycle visits every offset.
func FullCycleSteps(length int) ([]int, error) {
	if length <= 0 {
		return nil, fmt.Errorf("full cycle steps: %w (got %d)", polycipher.ErrInvalidLength, length)
	}
	var steps []int
	for step := 1; step < length; step++ {
		if GCD(step, length) == 1 {
			steps = append(steps, step)
		}
	}
	return steps, nil
}

// mod returns x mod n in [0, n).
func mod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}
