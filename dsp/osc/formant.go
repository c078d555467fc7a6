package osc

import (
	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/formant"
	"github.com/cwbudde/algo-modfm/dsp/modfm"
)

const (
	// formantScale maps the shift-shape knob onto an index offset.
	formantScale = 10.0
	// formantSpread maps the amount control onto a formant frequency
	// multiplier: full envelope at full amount triples every formant.
	formantSpread = 2.0
	// formantGain keeps the sum of four unit formants within [-1, 1].
	formantGain = 0.25
)

// formantShaper sums four table-driven formants. Targets are computed once
// per buffer and held.
type formantShaper struct {
	mapper modfm.IndexMapper

	w0     float64
	subInc float64
	spread float64
	ratio  [formant.Partials]float64
	index  [formant.Partials]float64
	amp    [formant.Partials]float64
}

func (f *formantShaper) SetParameter(c *Controls, id ParamID, value uint16) {
	setFormantParameter(c, id, value)
}

func (f *formantShaper) Begin(s *State, note NoteParams, frames int) {
	c := &s.Controls
	fo := core.NoteToHz(note.Note(), note.Fine())
	f.w0 = fo / s.SampleRate
	f.subInc = subIncrement(f.w0, c)
	f.spread = c.Amount * formantSpread

	lfo := note.LFO()
	position := formant.WrapPosition((lfo + c.Shape) * formant.ShapeSpan)
	set := formant.At(formant.Select(c.Register, note.Note()), position)
	for k, fm := range set {
		f.ratio[k] = harmonicRatio(fm.Frequency, fo)
		f.index[k] = clampIndex(f.mapper.Index(fo, fm.Bandwidth) + c.ShiftShape*formantScale)
		f.amp[k] = fm.Amplitude
	}
	// Targets hold for the whole buffer; the engine ramps stay idle.
	s.Phase.Begin(frames, 0, 0)
}

func (f *formantShaper) Next(s *State) float64 {
	e := 1 + f.spread*s.Env.Step()
	phase := s.Phase.Carrier.Phase()
	sphase := s.Phase.Sub.Phase()
	cosPm := s.Math.Cos(phase)

	var y float64
	for k := range f.ratio {
		y += modfm.FormantCos(s.Math, f.index[k], f.ratio[k]*e, phase, sphase, cosPm) * f.amp[k]
	}
	s.Index = f.index[0]
	s.Phase.Advance(f.w0, f.subInc)
	return formantGain * y
}

func (f *formantShaper) End(*State) {}

// setFormantParameter decodes the slots shared by the table-driven variants.
func setFormantParameter(c *Controls, id ParamID, value uint16) {
	switch id {
	case Param1:
		c.ShiftMax = int(value)
	case Param2:
		c.Shift = percent(value)
	case Param3:
		c.Register = clampSelector(int(value))
	}
}

func clampSelector(v int) int {
	if v < 0 {
		return 0
	}
	if v > formant.MaxSelector {
		return formant.MaxSelector
	}
	return v
}

// subIncrement is the sideband shift increment: w0*shift*(1+shiftMax).
func subIncrement(w0 float64, c *Controls) float64 {
	return w0 * c.Shift * float64(1+c.ShiftMax)
}

// harmonicRatio expresses a formant frequency as a ratio to fo. Formants
// below the fundamental sit on it.
func harmonicRatio(freq, fo float64) float64 {
	if freq < fo || fo <= 0 {
		return 1
	}
	return freq / fo
}

func clampIndex(ndx float64) float64 {
	return core.Clamp(ndx, 0, modfm.MaxIndex)
}
