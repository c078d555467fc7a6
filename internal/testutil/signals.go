package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// Logspace returns n logarithmically spaced values from lo to hi inclusive.
// Both bounds must be positive.
func Logspace(lo, hi float64, n int) []float64 {
	exps := Linspace(math.Log(lo), math.Log(hi), n)
	for i, e := range exps {
		exps[i] = math.Exp(e)
	}
	if n > 1 {
		exps[0] = lo
		exps[n-1] = hi
	}
	return exps
}

// DeterministicPhases returns n pseudo-random phases in [0, 1) from a fixed
// seed.
func DeterministicPhases(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}
