package envelope

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/fastmath"
)

// MaxTimeSeconds is the envelope time reached by a full-scale control.
const MaxTimeSeconds = 10.0

// timeBase is chosen so that timeBase^1 - 1 == MaxTimeSeconds.
const timeBase = MaxTimeSeconds + 1

// Linear is a linear attack/decay envelope.
//
// The zero value is usable once a sample rate is set with SetSampleRate.
type Linear struct {
	sampleRate float64

	level     float64
	attackInc float64
	decayInc  float64
	releasing bool
}

// NewLinear creates an idle envelope for the given sample rate.
func NewLinear(sampleRate float64) (*Linear, error) {
	e := &Linear{}
	if err := e.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return e, nil
}

// SetSampleRate updates the sample rate used to convert times into
// per-sample increments. It takes effect at the next Start.
func (e *Linear) SetSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("envelope sample rate must be > 0 and finite: %f", sampleRate)
	}
	e.sampleRate = sampleRate
	return nil
}

// Start restarts the envelope from 0. A non-positive attack time jumps
// straight to full level; a non-positive decay time makes the release
// drop to 0 on its first step.
func (e *Linear) Start(attackSeconds, decaySeconds float64) {
	e.level = 0
	e.releasing = false

	if attackSeconds > 0 {
		e.attackInc = 1 / (attackSeconds * e.sampleRate)
	} else {
		e.attackInc = 1
		e.level = 1
	}

	if decaySeconds > 0 {
		e.decayInc = 1 / (decaySeconds * e.sampleRate)
	} else {
		e.decayInc = 1
	}
}

// Release switches to the decay segment. The level does not change until
// the next Step.
func (e *Linear) Release() {
	e.releasing = true
}

// Step advances the envelope by one sample and returns the new level.
func (e *Linear) Step() float64 {
	if !e.releasing {
		e.level = math.Min(1, e.level+e.attackInc)
	} else {
		e.level = math.Max(0, e.level-e.decayInc)
	}
	return e.level
}

// Level returns the current level without advancing.
func (e *Linear) Level() float64 { return e.level }

// Releasing reports whether the envelope is in its decay segment.
func (e *Linear) Releasing() bool { return e.releasing }

// AttackIncrement returns the per-sample attack increment.
func (e *Linear) AttackIncrement() float64 { return e.attackInc }

// DecayIncrement returns the per-sample decay increment.
func (e *Linear) DecayIncrement() float64 { return e.decayInc }

// SampleRate returns sample rate in Hz.
func (e *Linear) SampleRate() float64 { return e.sampleRate }

// Reset returns the envelope to silence.
func (e *Linear) Reset() {
	e.level = 0
	e.attackInc = 0
	e.decayInc = 0
	e.releasing = false
}

// TimeFromControl maps a normalized control in [0, 1] to seconds along the
// curve 11^x - 1, which spans 0 to 10 seconds and is close to linear in
// perceived duration.
func TimeFromControl(m fastmath.Math, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x > 1 {
		x = 1
	}
	t := m.Pow(timeBase, x) - 1
	if t < 0 {
		return 0
	}
	return t
}

// ControlFromTime is the exact inverse of TimeFromControl.
func ControlFromTime(seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	if seconds >= MaxTimeSeconds {
		return 1
	}
	return math.Log1p(seconds) / math.Log(timeBase)
}
