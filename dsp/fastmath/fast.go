package fastmath

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

const (
	// ln2 is the natural logarithm of 2, used for base conversions.
	ln2 = 0.693147180559945309417232121458

	expFloor   = -80.0
	expCeiling = 80.0

	sinTableSize = 4096
)

// sinTable holds one sine cycle plus a guard point so interpolation at the
// last index never wraps.
var sinTable [sinTableSize + 1]float64

func init() {
	for i := range sinTable {
		sinTable[i] = math.Sin(2 * math.Pi * float64(i) / sinTableSize)
	}
}

// Fast implements Math with approximations suitable for per-sample use.
type Fast struct{}

var _ Math = Fast{}

// Exp returns an approximation of e**x. Non-positive arguments never
// return more than 1, which keeps ModFM envelopes bounded.
func (Fast) Exp(x float64) float64 {
	if x < expFloor {
		return 0
	}
	if x > expCeiling {
		x = expCeiling
	}
	y := approx.FastExp(x)
	if x <= 0 && y > 1 {
		return 1
	}
	return y
}

// Pow returns an approximation of x**y for x > 0. Other bases fall back to
// math.Pow.
func (f Fast) Pow(x, y float64) float64 {
	if x <= 0 {
		return math.Pow(x, y)
	}
	return f.Exp(y * approx.FastLog(x))
}

// Pow2 returns an approximation of 2**x.
// Uses the identity: 2^x = e^(x * ln(2))
func (f Fast) Pow2(x float64) float64 {
	return f.Exp(x * ln2)
}

// Sqrt returns an approximation of the square root of x; x <= 0 yields 0.
func (Fast) Sqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return approx.FastSqrt(x)
}

// Sin returns sin(2*pi*phase) from the interpolated table.
func (Fast) Sin(phase float64) float64 {
	return lookup(phase)
}

// Cos returns cos(2*pi*phase) from the interpolated table.
func (Fast) Cos(phase float64) float64 {
	return lookup(phase + 0.25)
}

func lookup(phase float64) float64 {
	phase -= math.Floor(phase)
	pos := phase * sinTableSize
	i := int(pos)
	if i < 0 {
		i = 0
	} else if i >= sinTableSize {
		i = sinTableSize - 1
	}
	frac := pos - float64(i)
	return sinTable[i] + frac*(sinTable[i+1]-sinTable[i])
}
