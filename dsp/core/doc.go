// Package core holds the small numeric primitives shared by the oscillator
// packages: processor configuration, phase wrapping, clamping, q31
// fixed-point conversion and note-to-frequency conversion.
package core
