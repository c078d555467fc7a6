package osc

import (
	"fmt"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/envelope"
	"github.com/cwbudde/algo-modfm/dsp/fastmath"
	"github.com/cwbudde/algo-modfm/dsp/modfm"
)

// Shaper is the variant-specific part of a voice.
//
// Begin runs once per buffer before any sample and computes per-buffer
// targets; it must call State.Phase.Begin. Next renders one sample: it steps
// the envelope exactly once and advances the phase engine exactly once. End
// runs after the last sample of the buffer.
type Shaper interface {
	SetParameter(c *Controls, id ParamID, value uint16)
	Begin(s *State, note NoteParams, frames int)
	Next(s *State) float64
	End(s *State)
}

// State is the per-voice state a Shaper reads and advances.
type State struct {
	Math       fastmath.Math
	SampleRate float64
	Env        envelope.Linear
	Phase      modfm.PhaseEngine
	Controls   Controls

	// Index is the modulation index of the most recent sample, or of the
	// first formant for the formant variants.
	Index float64
}

// Option configures a Voice.
type Option func(*voiceConfig) error

type voiceConfig struct {
	processor []core.ProcessorOption
	math      fastmath.Math
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *voiceConfig) error {
		if sampleRate <= 0 || !core.IsFinite(sampleRate) {
			return fmt.Errorf("osc sample rate must be > 0 and finite: %f", sampleRate)
		}
		cfg.processor = append(cfg.processor, core.WithSampleRate(sampleRate))
		return nil
	}
}

// WithMath sets the numeric strategy. The default is fastmath.Default().
func WithMath(m fastmath.Math) Option {
	return func(cfg *voiceConfig) error {
		if m == nil {
			return fmt.Errorf("osc math strategy must not be nil")
		}
		cfg.math = m
		return nil
	}
}

// Voice is one monophonic ModFM oscillator.
type Voice struct {
	variant Variant
	shaper  Shaper
	state   State
}

// New creates a voice of the given variant with default controls.
func New(variant Variant, opts ...Option) (*Voice, error) {
	cfg := voiceConfig{math: fastmath.Default()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	shaper, err := newShaper(variant, cfg.math)
	if err != nil {
		return nil, err
	}
	proc := core.ApplyProcessorOptions(cfg.processor...)

	v := &Voice{
		variant: variant,
		shaper:  shaper,
		state: State{
			Math:       cfg.math,
			SampleRate: proc.SampleRate,
			Phase:      modfm.NewPhaseEngine(),
			Controls:   defaultControls(),
		},
	}
	if err := v.state.Env.SetSampleRate(proc.SampleRate); err != nil {
		return nil, err
	}
	return v, nil
}

func newShaper(variant Variant, m fastmath.Math) (Shaper, error) {
	switch variant {
	case Extended:
		return &extendedShaper{}, nil
	case Formant:
		return &formantShaper{mapper: modfm.PowerOfTwoMapper{Math: m}}, nil
	case PhaseSync:
		return &phaseSyncShaper{mapper: modfm.PowerOfTwoMapper{Math: m}}, nil
	case Vowel:
		return &vowelShaper{mapper: modfm.ExponentialMapper{Math: m}}, nil
	default:
		return nil, fmt.Errorf("osc: unknown variant %d", int(variant))
	}
}

// Init returns the voice to its power-on state: envelope silent and the
// next buffer starting from a reset. Controls are kept.
func (v *Voice) Init(uint32, uint32) {
	v.state.Env.Reset()
	v.state.Phase.Arm()
}

// NoteOn restarts the envelope from the current attack/decay controls and
// arms a phase reset for the next buffer.
func (v *Voice) NoteOn(NoteParams) {
	c := &v.state.Controls
	v.state.Env.Start(
		envelope.TimeFromControl(v.state.Math, c.Attack),
		envelope.TimeFromControl(v.state.Math, c.Decay),
	)
	v.state.Phase.Arm()
}

// NoteOff starts the envelope release.
func (v *Voice) NoteOff(NoteParams) {
	v.state.Env.Release()
}

// SetParameter applies one host parameter. Nothing is recomputed until the
// next Render.
func (v *Voice) SetParameter(id ParamID, value uint16) {
	c := &v.state.Controls
	switch id {
	case ParamAttack:
		c.Attack = percent(value)
	case ParamDecay:
		c.Decay = percent(value)
	case ParamAmount:
		c.Amount = percent(value)
	case ParamShape:
		c.Shape = core.ParamValueToFloat(value)
		v.shaper.SetParameter(c, id, value)
	case ParamShiftShape:
		c.ShiftShape = core.ParamValueToFloat(value)
		v.shaper.SetParameter(c, id, value)
	default:
		v.shaper.SetParameter(c, id, value)
	}
}

// Render writes len(out) samples as q31.
func (v *Voice) Render(p NoteParams, out []int32) {
	if len(out) == 0 {
		return
	}
	s := &v.state
	v.shaper.Begin(s, p, len(out))
	for i := range out {
		out[i] = core.FloatToQ31(v.shaper.Next(s))
	}
	v.end()
}

// RenderFloat writes len(out) samples as floats in [-1, 1].
func (v *Voice) RenderFloat(p NoteParams, out []float64) {
	if len(out) == 0 {
		return
	}
	s := &v.state
	v.shaper.Begin(s, p, len(out))
	for i := range out {
		out[i] = v.shaper.Next(s)
	}
	v.end()
}

func (v *Voice) end() {
	v.shaper.End(&v.state)
	v.state.Phase.End()
}

// Variant returns the voice variant.
func (v *Voice) Variant() Variant { return v.variant }

// Controls returns a copy of the current controls.
func (v *Voice) Controls() Controls { return v.state.Controls }

// SetControls replaces all controls at once, bypassing host decoding.
func (v *Voice) SetControls(c Controls) { v.state.Controls = c }

// EnvelopeLevel returns the current envelope level.
func (v *Voice) EnvelopeLevel() float64 { return v.state.Env.Level() }

// Phases returns the carrier and sub phases.
func (v *Voice) Phases() (carrier, sub float64) {
	return v.state.Phase.Carrier.Phase(), v.state.Phase.Sub.Phase()
}

// SampleRate returns sample rate in Hz.
func (v *Voice) SampleRate() float64 { return v.state.SampleRate }

// Index returns the modulation index fed to the kernel for the most recent
// sample. The formant variants report the index of their first formant.
func (v *Voice) Index() float64 { return v.state.Index }

// Math returns the numeric strategy.
func (v *Voice) Math() fastmath.Math { return v.state.Math }
