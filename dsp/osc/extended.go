package osc

import (
	"math"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/modfm"
)

// ExtendedCeiling is the largest modulation amount the Extended variant
// feeds to the kernel.
const ExtendedCeiling = 15.0

// extendedShaper renders the asymmetric kernel with independent carrier and
// modulator ratios. The sub accumulator carries the modulator phase.
type extendedShaper struct {
	carrierInc float64
	modInc     float64
	amount     float64
	offset     float64
	r, s       float64
}

func (x *extendedShaper) SetParameter(c *Controls, id ParamID, value uint16) {
	switch id {
	case Param1:
		c.CarrierRatio = float64(value) + 1
	case Param2:
		c.ModRatio = float64(value) + 1
	case Param3:
		c.ModFine = 1 + percent(value)
	case ParamShape:
		c.R, c.S = modfm.ShapeToRS(c.Shape)
	}
}

func (x *extendedShaper) Begin(s *State, note NoteParams, frames int) {
	c := &s.Controls
	w0 := core.NoteToW0(note.Note(), note.Fine(), s.SampleRate)
	x.carrierInc = w0 * c.CarrierRatio
	x.modInc = w0 * c.ModRatio * c.ModFine
	x.amount = c.Amount * ExtendedCeiling
	x.offset = c.ShiftShape * ExtendedCeiling
	x.r, x.s = c.R, c.S

	lfo := math.Abs(note.LFO()) * ExtendedCeiling
	s.Phase.Begin(frames, lfo, 0)
}

func (x *extendedShaper) Next(s *State) float64 {
	k := x.amount*s.Env.Step() + x.offset + s.Phase.LFO.Value()
	if k > ExtendedCeiling {
		k = ExtendedCeiling
	}
	s.Index = k
	y := modfm.Kernel(s.Math, k, x.r, x.s, s.Phase.Carrier.Phase(), s.Phase.Sub.Phase())
	s.Phase.Advance(x.carrierInc, x.modInc)
	return y
}

func (x *extendedShaper) End(*State) {}
