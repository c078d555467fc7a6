package formant

import (
	"fmt"
	"math"
)

const (
	// Partials is the number of formants per register.
	Partials = 4
	// ShapePoints is the number of formant-shape control points per formant.
	ShapePoints = 6
	// ShapeSpan is the width of the interpolation domain: positions live in
	// [0, ShapeSpan).
	ShapeSpan = ShapePoints - 1
)

// Register identifies one of the vocal formant data sets.
type Register int

const (
	Bass Register = iota
	Tenor
	Alto
	Soprano

	numRegisters
)

// String returns the register name.
func (r Register) String() string {
	switch r {
	case Bass:
		return "bass"
	case Tenor:
		return "tenor"
	case Alto:
		return "alto"
	case Soprano:
		return "soprano"
	default:
		return fmt.Sprintf("Register(%d)", int(r))
	}
}

// Valid reports whether r names one of the four registers.
func (r Register) Valid() bool {
	return r >= Bass && r < numRegisters
}

// Partial is one formant sampled at the six shape points.
type Partial struct {
	Frequency [ShapePoints]float64
	Bandwidth [ShapePoints]float64
	Amplitude [ShapePoints]float64
}

// Table is the full formant description of one register.
type Table [Partials]Partial

// Formant is a single formant evaluated at one shape position.
type Formant struct {
	Frequency float64
	Bandwidth float64
	Amplitude float64
}

// Set holds all formants of a register evaluated at one shape position.
type Set [Partials]Formant

// Lookup returns a copy of the table for r. Out-of-range registers are
// clamped.
func Lookup(r Register) Table {
	return bank[clampRegister(r)]
}

// At interpolates every formant of r at the given shape position. The
// position is wrapped into [0, ShapeSpan).
func At(r Register, position float64) Set {
	t := &bank[clampRegister(r)]
	n, frac := split(WrapPosition(position))

	var s Set
	for k := range t {
		p := &t[k]
		s[k] = Formant{
			Frequency: lerp(p.Frequency[n], p.Frequency[n+1], frac),
			Bandwidth: lerp(p.Bandwidth[n], p.Bandwidth[n+1], frac),
			Amplitude: lerp(p.Amplitude[n], p.Amplitude[n+1], frac),
		}
	}
	return s
}

// WrapPosition folds a shape position into [0, ShapeSpan). Non-finite
// positions map to 0.
func WrapPosition(position float64) float64 {
	if math.IsNaN(position) || math.IsInf(position, 0) {
		return 0
	}
	w := position - ShapeSpan*math.Floor(position/ShapeSpan)
	if w >= ShapeSpan || w < 0 {
		return 0
	}
	return w
}

func split(position float64) (int, float64) {
	n := int(position)
	if n >= ShapeSpan {
		n = ShapeSpan - 1
	}
	return n, position - float64(n)
}

func lerp(a, b, frac float64) float64 {
	return a + frac*(b-a)
}

func clampRegister(r Register) Register {
	if r < Bass {
		return Bass
	}
	if r >= numRegisters {
		return Soprano
	}
	return r
}
