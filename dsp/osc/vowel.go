package osc

import (
	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/formant"
	"github.com/cwbudde/algo-modfm/dsp/modfm"
)

// vowelShaper is the table-driven formant voice with every per-partial
// target glided across the buffer, so vowel morphs driven by the shape knob
// or the LFO never step at buffer boundaries.
type vowelShaper struct {
	mapper modfm.IndexMapper

	w0     float64
	subInc float64
	spread float64
	ratio  [formant.Partials]modfm.Ramp
	index  [formant.Partials]modfm.Ramp
	amp    [formant.Partials]modfm.Ramp
}

func (v *vowelShaper) SetParameter(c *Controls, id ParamID, value uint16) {
	setFormantParameter(c, id, value)
}

func (v *vowelShaper) Begin(s *State, note NoteParams, frames int) {
	c := &s.Controls
	fo := core.NoteToHz(note.Note(), note.Fine())
	v.w0 = fo / s.SampleRate
	v.subInc = subIncrement(v.w0, c)
	v.spread = c.Amount * formantSpread

	lfo := note.LFO()
	position := formant.WrapPosition((lfo + c.Shape) * formant.ShapeSpan)
	set := formant.At(formant.Select(c.Register, note.Note()), position)
	reset := s.Phase.Resetting()
	for k, fm := range set {
		ratio := harmonicRatio(fm.Frequency, fo)
		index := clampIndex(v.mapper.Index(fo, fm.Bandwidth) + c.ShiftShape*formantScale)
		if reset {
			v.ratio[k].Seed(ratio)
			v.index[k].Seed(index)
			v.amp[k].Seed(fm.Amplitude)
			continue
		}
		v.ratio[k].Begin(ratio, frames)
		v.index[k].Begin(index, frames)
		v.amp[k].Begin(fm.Amplitude, frames)
	}
	// The per-partial ramps above carry the glide; the engine ramps stay idle.
	s.Phase.Begin(frames, 0, 0)
}

func (v *vowelShaper) Next(s *State) float64 {
	e := 1 + v.spread*s.Env.Step()
	phase := s.Phase.Carrier.Phase()
	sphase := s.Phase.Sub.Phase()
	cosPm := s.Math.Cos(phase)

	s.Index = clampIndex(v.index[0].Value())
	var y float64
	for k := range v.ratio {
		ndx := clampIndex(v.index[k].Value())
		y += modfm.FormantCos(s.Math, ndx, v.ratio[k].Value()*e, phase, sphase, cosPm) * v.amp[k].Value()
		v.ratio[k].Step()
		v.index[k].Step()
		v.amp[k].Step()
	}
	s.Phase.Advance(v.w0, v.subInc)
	return formantGain * y
}

func (v *vowelShaper) End(*State) {
	for k := range v.ratio {
		v.ratio[k].Finish()
		v.index[k].Finish()
		v.amp[k].Finish()
	}
}
