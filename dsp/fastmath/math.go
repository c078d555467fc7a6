package fastmath

import "math"

// Math is the numeric strategy consumed by the oscillator kernels.
//
// Sin and Cos take a normalized phase: one full cycle per unit, so
// Cos(0.25) == 0.
type Math interface {
	Exp(x float64) float64
	Pow(x, y float64) float64
	Pow2(x float64) float64
	Sqrt(x float64) float64
	Sin(phase float64) float64
	Cos(phase float64) float64
}

// Exact implements Math with the standard library.
type Exact struct{}

var _ Math = Exact{}

// Exp returns e**x.
func (Exact) Exp(x float64) float64 { return math.Exp(x) }

// Pow returns x**y.
func (Exact) Pow(x, y float64) float64 { return math.Pow(x, y) }

// Pow2 returns 2**x.
func (Exact) Pow2(x float64) float64 { return math.Exp2(x) }

// Sqrt returns the square root of x.
func (Exact) Sqrt(x float64) float64 { return math.Sqrt(x) }

// Sin returns sin(2*pi*phase).
func (Exact) Sin(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

// Cos returns cos(2*pi*phase).
func (Exact) Cos(phase float64) float64 { return math.Cos(2 * math.Pi * phase) }
