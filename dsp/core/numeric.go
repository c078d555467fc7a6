package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Clamp01 limits value to [0, 1]. NaN maps to 0.
func Clamp01(value float64) float64 {
	if !(value > 0) {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// Wrap01 folds x into [0, 1) by subtracting its floor. It is safe for
// negative inputs.
func Wrap01(x float64) float64 {
	w := x - math.Floor(x)
	// x slightly below an integer can round up to exactly 1.
	if w >= 1 {
		return 0
	}
	return w
}

// WrapPositive folds a non-negative x into [0, 1) by truncation. It is the
// fast path for accumulators that never go negative; callers that cannot
// guarantee x >= 0 must use Wrap01.
func WrapPositive(x float64) float64 {
	w := x - float64(uint64(x))
	if w >= 1 {
		return 0
	}
	return w
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
