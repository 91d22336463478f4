package gamemath

import (
	"math"
	"strconv"
)

// Decay reduces a non-negative speed toward zero by delta, never going below zero.
func Decay(speed, delta float64) float64 {
	if speed > delta {
		return speed - delta
	}
	return 0
}

// Clamp clamps v to [lo, hi]. NaN passes through unchanged.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// RoundDecimals rounds x to the given number of decimal places using the
// correctly rounded decimal expansion of x (half-to-even on exact ties).
// Results are bit-identical across runs and platforms.
func RoundDecimals(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', decimals, 64), 64)
	if err != nil {
		return x
	}
	return r
}
