package modfm

import (
	"math"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/fastmath"
)

const (
	// MaxIndex bounds every mapped modulation index. Near-zero
	// fundamentals drive both formulas towards a pole; the kernel output
	// stays bounded either way, but the index must stay finite.
	MaxIndex = 1024.0

	// bandwidthScale relates the -3 dB bandwidth of the ModFM spectral
	// envelope to the exponent of the index formulas.
	bandwidthScale = 0.29

	minQ   = 0.5
	qRange = 3.5
)

// IndexMapper converts a fundamental fo and a formant bandwidth kbw (both in
// Hz) into a ModFM modulation index.
type IndexMapper interface {
	Index(fo, kbw float64) float64
}

// PowerOfTwoMapper is the power-of-two formula:
//
//	g = 2^(-fo/(0.29*kbw)), index = 2g/(1-g)^2
type PowerOfTwoMapper struct {
	Math fastmath.Math
}

var _ IndexMapper = PowerOfTwoMapper{}

// Index returns the modulation index in [0, MaxIndex].
func (p PowerOfTwoMapper) Index(fo, kbw float64) float64 {
	x, ok := exponent(fo, kbw)
	if !ok {
		return x
	}
	g := mathOrDefault(p.Math).Pow2(-x)
	gm := 1 - g
	if gm <= 0 {
		return MaxIndex
	}
	return clampIndex(2 * g / (gm * gm))
}

// ExponentialMapper is the exponential formula, numerically closer to the
// analytic bandwidth at high Q:
//
//	k = e^(-fo/(0.29*kbw)), kg = 2*sqrt(k)/(1-k), index = kg^2/2
type ExponentialMapper struct {
	Math fastmath.Math
}

var _ IndexMapper = ExponentialMapper{}

// Index returns the modulation index in [0, MaxIndex].
func (e ExponentialMapper) Index(fo, kbw float64) float64 {
	x, ok := exponent(fo, kbw)
	if !ok {
		return x
	}
	m := mathOrDefault(e.Math)
	k := m.Exp(-x)
	km := 1 - k
	if km <= 0 {
		return MaxIndex
	}
	kg := 2 * m.Sqrt(k) / km
	return clampIndex(kg * kg / 2)
}

// Bandwidth derives a formant bandwidth from its center frequency and a
// normalized Q control in [0, 1], covering Q factors 0.5 to 4.
func Bandwidth(center, q float64) float64 {
	return center / (minQ + qRange*core.Clamp01(q))
}

// exponent returns fo/(0.29*kbw). When ok is false the first value is the
// final index for a degenerate input.
func exponent(fo, kbw float64) (float64, bool) {
	if math.IsNaN(fo) || math.IsNaN(kbw) || kbw <= 0 {
		return 0, false
	}
	x := fo / (bandwidthScale * kbw)
	if !(x > 0) {
		return MaxIndex, false
	}
	if math.IsInf(x, 1) {
		return 0, false
	}
	return x, true
}

func clampIndex(ndx float64) float64 {
	if !(ndx < MaxIndex) {
		return MaxIndex
	}
	if ndx < 0 {
		return 0
	}
	return ndx
}

func mathOrDefault(m fastmath.Math) fastmath.Math {
	if m == nil {
		return fastmath.Default()
	}
	return m
}
