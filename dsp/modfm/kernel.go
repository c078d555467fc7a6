package modfm

import (
	"math"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/fastmath"
)

// oneOverTwoPi scales the phase deviation of the asymmetric kernel.
const oneOverTwoPi = 1 / (2 * math.Pi)

// Kernel evaluates the asymmetric ModFM kernel.
//
// k is the combined modulation amount, r weights the exponential
// (amplitude) modulation and s the phase deviation; pc and pm are the
// carrier and modulator phases in [0, 1).
func Kernel(m fastmath.Math, k, r, s, pc, pm float64) float64 {
	ph := core.Wrap01(pc + s*k*oneOverTwoPi*m.Sin(pm))
	return m.Exp(r*k*(m.Cos(pm)-1)) * m.Cos(ph)
}

// Harmonic splits a harmonic ratio into its integer part and the fractional
// weight of the next harmonic. Negative or non-finite ratios yield (0, 0).
func Harmonic(ff float64) (int, float64) {
	if !(ff > 0) || math.IsInf(ff, 0) {
		return 0, 0
	}
	if ff >= math.MaxInt32 {
		return math.MaxInt32, 0
	}
	n := uint32(ff)
	return int(n), ff - float64(n)
}

// Formant places a formant at the non-integer harmonic ratio ff by
// crossfading the ModFM kernels of the two neighbouring harmonics. ndx is the
// modulation index, phase the fundamental phase, sphase the sideband shift
// phase and pm the modulator phase.
func Formant(m fastmath.Math, ndx, ff, phase, sphase, pm float64) float64 {
	return FormantCos(m, ndx, ff, phase, sphase, m.Cos(pm))
}

// FormantCos is Formant with the modulator term cos(2*pi*pm) supplied by the
// caller, so several formants sharing one modulator evaluate it once.
func FormantCos(m fastmath.Math, ndx, ff, phase, sphase, cosPm float64) float64 {
	n, a := Harmonic(ff)
	pc1 := core.Wrap01(phase*float64(n) + sphase)
	pc2 := core.Wrap01(phase*float64(n+1) + sphase)
	return (a*m.Cos(pc2) + (1-a)*m.Cos(pc1)) * m.Exp(ndx*(cosPm-1))
}

// FormantAt is the two-harmonic kernel with the harmonic carrier phases
// already computed: a weighs pc2 against pc1.
func FormantAt(m fastmath.Math, ndx, a, pc1, pc2, pm float64) float64 {
	return (a*m.Cos(pc2) + (1-a)*m.Cos(pc1)) * m.Exp(ndx*(m.Cos(pm)-1))
}
