// Package fastmath provides the transcendental functions used by the ModFM
// kernels behind a single [Math] strategy interface.
//
// Two strategies are available:
//
//   - [Exact]: standard library math, used by tests and offline rendering.
//   - [Fast]: approximations for real-time inner loops.
//
// # Accuracy Characteristics
//
// Fast.Exp / Fast.Pow2: <0.1% relative error for arguments in [-10, 10],
// flushed to zero below -80.
//
// Fast.Sin / Fast.Cos: 4096-point table with linear interpolation, <1e-6
// absolute error.
//
// Fast.Sqrt: <0.01% relative error for x in [0, 1000].
//
// At these tolerances the kernel output differs from the exact strategy by
// far less than one step of the 16-bit grid and typically within a few
// steps of the q31 output grid.
//
// # Selecting a strategy
//
// [Default] returns Exact unless the module is built with the fastmath build
// tag, in which case it returns Fast.
package fastmath
