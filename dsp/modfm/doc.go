// Package modfm implements the building blocks of Modified FM synthesis:
// the closed-form kernels, the bandwidth-to-index mappers and the phase
// engine that keeps accumulators and per-buffer ramps continuous.
//
// The ModFM kernel
//
//	y = exp(k*(cos(wm) - 1)) * cos(wc)
//
// has a fixed, analytically known spectral envelope (modified Bessel
// functions scaled by exp(-k)), so unlike classical FM its sidebands never
// grow without bound. Every function here is pure and allocation-free; the
// only state lives in [PhaseEngine] and is owned by the caller.
package modfm
