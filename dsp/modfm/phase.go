package modfm

import "github.com/cwbudde/algo-modfm/dsp/core"

// Accumulator is a normalized phase in [0, 1).
type Accumulator struct {
	phase float64
}

// Phase returns the current phase.
func (a *Accumulator) Phase() float64 { return a.phase }

// Reset sets the phase to 0.
func (a *Accumulator) Reset() { a.phase = 0 }

// Advance adds inc and wraps the result back into [0, 1). Non-negative
// increments take the truncating fast path.
func (a *Accumulator) Advance(inc float64) float64 {
	if inc >= 0 {
		a.phase = core.WrapPositive(a.phase + inc)
	} else {
		a.phase = core.Wrap01(a.phase + inc)
	}
	return a.phase
}

// Ramp moves a control linearly from its previous end-of-buffer value to a
// new target across one buffer, so host values that change between
// callbacks never produce a step.
type Ramp struct {
	value  float64
	inc    float64
	target float64
}

// Seed jumps straight to v with no ramp.
func (r *Ramp) Seed(v float64) {
	r.value = v
	r.target = v
	r.inc = 0
}

// Begin schedules a linear move to target over frames steps.
func (r *Ramp) Begin(target float64, frames int) {
	r.target = target
	if frames <= 0 {
		r.value = target
		r.inc = 0
		return
	}
	r.inc = (target - r.value) / float64(frames)
}

// Value returns the value for the current sample.
func (r *Ramp) Value() float64 { return r.value }

// Target returns the value the ramp reaches at the end of the buffer.
func (r *Ramp) Target() float64 { return r.target }

// Step advances to the next sample.
func (r *Ramp) Step() { r.value += r.inc }

// Finish lands exactly on the target, discarding accumulated rounding.
func (r *Ramp) Finish() {
	r.value = r.target
	r.inc = 0
}

// PhaseEngine owns the two phase accumulators and the two per-buffer ramps
// of a voice.
//
// It has two states. After Arm it is resetting: the next Begin snaps both
// phases to 0 and both ramps to their targets. End returns it to running,
// where Begin continues phases and ramps from where the previous buffer
// left them.
type PhaseEngine struct {
	Carrier Accumulator
	Sub     Accumulator
	LFO     Ramp
	Target  Ramp

	reset bool
}

// NewPhaseEngine returns an engine that resets on its first buffer.
func NewPhaseEngine() PhaseEngine {
	return PhaseEngine{reset: true}
}

// Arm enters the resetting state; it takes effect at the next Begin.
func (p *PhaseEngine) Arm() { p.reset = true }

// Resetting reports whether the next (or current) buffer starts from a
// reset.
func (p *PhaseEngine) Resetting() bool { return p.reset }

// Begin prepares a buffer of frames samples with new LFO and target-value
// goals.
func (p *PhaseEngine) Begin(frames int, lfo, target float64) {
	if p.reset {
		p.Carrier.Reset()
		p.Sub.Reset()
		p.LFO.Seed(lfo)
		p.Target.Seed(target)
		return
	}
	p.LFO.Begin(lfo, frames)
	p.Target.Begin(target, frames)
}

// Advance moves both accumulators and both ramps by one sample.
func (p *PhaseEngine) Advance(carrierInc, subInc float64) {
	p.Carrier.Advance(carrierInc)
	p.Sub.Advance(subInc)
	p.LFO.Step()
	p.Target.Step()
}

// End closes the buffer: ramps land on their targets and a pending reset is
// cleared.
func (p *PhaseEngine) End() {
	p.LFO.Finish()
	p.Target.Finish()
	p.reset = false
}
