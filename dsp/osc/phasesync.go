package osc

import (
	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/modfm"
)

const (
	// MaxFormantHz is the ceiling of the PhaseSync formant frequency.
	MaxFormantHz = 12000.0
	// phaseSyncSpread maps the amount control onto the envelope-driven
	// formant sweep.
	phaseSyncSpread = 32.0
)

// phaseSyncShaper renders one formant whose center frequency sweeps freely
// between fo and MaxFormantHz. The target ramp carries the formant frequency
// and the LFO ramp its relative LFO offset.
type phaseSyncShaper struct {
	mapper modfm.IndexMapper

	fo     float64
	w0     float64
	subInc float64
	spread float64
	target float64
	index  float64
}

func (p *phaseSyncShaper) SetParameter(c *Controls, id ParamID, value uint16) {
	switch id {
	case Param1:
		c.ShiftMax = int(value)
	case Param2:
		c.Shift = percent(value)
	case Param3:
		c.TrackMode = int(value)
	}
}

func (p *phaseSyncShaper) Begin(s *State, note NoteParams, frames int) {
	c := &s.Controls
	p.fo = core.NoteToHz(note.Note(), note.Fine())
	p.w0 = p.fo / s.SampleRate
	p.subInc = subIncrement(p.w0, c)
	p.spread = c.Amount * phaseSyncSpread
	p.target = trackedFrequency(s, p.fo, c.Shape, c.TrackMode)

	peak := p.target * (1 + p.spread*s.Env.Level())
	if peak > MaxFormantHz {
		peak = MaxFormantHz
	}
	p.index = clampIndex(p.mapper.Index(p.fo, modfm.Bandwidth(peak, c.ShiftShape)))

	s.Phase.Begin(frames, note.LFO(), p.target)
}

// trackedFrequency maps the shape knob x onto a formant frequency. Mode 0
// sweeps exponentially from fo to MaxFormantHz; mode n > 0 spans n+1
// octaves below MaxFormantHz independent of the note.
func trackedFrequency(s *State, fo, x float64, mode int) float64 {
	if mode > 0 {
		return MaxFormantHz * s.Math.Pow2((x-1)*float64(mode+1))
	}
	return fo * s.Math.Pow(MaxFormantHz/fo, x)
}

func (p *phaseSyncShaper) Next(s *State) float64 {
	e := 1 + p.spread*s.Env.Step()
	ff := (s.Phase.Target.Value() + s.Phase.LFO.Value()*p.target) * e
	if ff < MaxFormantHz {
		if ff < p.fo {
			ff = p.fo
		}
	} else {
		ff = MaxFormantHz
	}

	n, a := modfm.Harmonic(ff / p.fo)
	phase := s.Phase.Carrier.Phase()
	sphase := s.Phase.Sub.Phase()
	pc1 := core.WrapPositive(phase*float64(n) + sphase)
	pc2 := core.WrapPositive(phase*float64(n+1) + sphase)

	s.Index = p.index
	y := modfm.FormantAt(s.Math, p.index, a, pc1, pc2, phase)
	s.Phase.Advance(p.w0, p.subInc)
	return y
}

func (p *phaseSyncShaper) End(*State) {}
