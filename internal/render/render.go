// Package render drives an oscillator voice through a scripted note the
// way an audio host would: parameters first, then note-on, a hold phase,
// note-off and a release tail, one block per callback.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/osc"
)

// Setting is one host parameter assignment.
type Setting struct {
	ID    osc.ParamID
	Value uint16
}

// String formats s as name=value.
func (s Setting) String() string {
	return fmt.Sprintf("%v=%d", s.ID, s.Value)
}

// ParseSetting parses name=value, e.g. "shape=512" or "attack=20".
func ParseSetting(text string) (Setting, error) {
	name, value, ok := strings.Cut(text, "=")
	if !ok {
		return Setting{}, fmt.Errorf("render: setting %q is not name=value", text)
	}
	id, err := osc.ParseParamID(name)
	if err != nil {
		return Setting{}, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(value), 10, 16)
	if err != nil {
		return Setting{}, fmt.Errorf("render: setting %q: %w", text, err)
	}
	return Setting{ID: id, Value: uint16(v)}, nil
}

// Settings collects repeated name=value flags. It implements flag.Value.
type Settings []Setting

// String joins the settings with commas.
func (s *Settings) String() string {
	parts := make([]string, len(*s))
	for i, st := range *s {
		parts[i] = st.String()
	}
	return strings.Join(parts, ",")
}

// Set parses and appends one setting.
func (s *Settings) Set(text string) error {
	st, err := ParseSetting(text)
	if err != nil {
		return err
	}
	*s = append(*s, st)
	return nil
}

// Script describes one note.
type Script struct {
	Note int
	Fine uint8
	// Hold and Tail are the note-on and post-release durations in seconds.
	Hold float64
	Tail float64
	// LFORate and LFODepth shape a sine fed to the voice as host LFO, one
	// value per block.
	LFORate  float64
	LFODepth float64
	// BlockSize is the number of frames rendered per callback. Zero
	// selects the default processor block size.
	BlockSize int
	Settings  []Setting
}

// Validate checks the script against a sample rate.
func (s Script) Validate() error {
	switch {
	case s.Note < 0 || s.Note > 127:
		return fmt.Errorf("render: note must be in [0, 127]: %d", s.Note)
	case s.Hold <= 0 || !core.IsFinite(s.Hold):
		return fmt.Errorf("render: hold must be > 0 and finite: %f", s.Hold)
	case s.Tail < 0 || !core.IsFinite(s.Tail):
		return fmt.Errorf("render: tail must be >= 0 and finite: %f", s.Tail)
	case s.LFORate < 0 || math.IsNaN(s.LFORate):
		return fmt.Errorf("render: lfo rate must be >= 0: %f", s.LFORate)
	case s.LFODepth < 0 || s.LFODepth > 1:
		return fmt.Errorf("render: lfo depth must be in [0, 1]: %f", s.LFODepth)
	case s.BlockSize < 0:
		return fmt.Errorf("render: block size must be >= 0: %d", s.BlockSize)
	}
	return nil
}

// Player renders a Script block by block.
type Player struct {
	voice  *osc.Voice
	script Script

	holdFrames  int
	totalFrames int
	frame       int
	released    bool
	block       []float64
}

// NewPlayer applies the script settings to v and triggers the note.
func NewPlayer(v *osc.Voice, s Script) (*Player, error) {
	if v == nil {
		return nil, fmt.Errorf("render: nil voice")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	sr := v.SampleRate()
	p := &Player{
		voice:       v,
		script:      s,
		holdFrames:  int(math.Round(s.Hold * sr)),
		totalFrames: int(math.Round((s.Hold + s.Tail) * sr)),
		block:       make([]float64, core.ApplyProcessorOptions(core.WithBlockSize(s.BlockSize)).BlockSize),
	}
	if p.holdFrames < 1 {
		p.holdFrames = 1
	}
	if p.totalFrames < p.holdFrames {
		p.totalFrames = p.holdFrames
	}

	for _, st := range s.Settings {
		v.SetParameter(st.ID, st.Value)
	}
	v.NoteOn(p.params())
	return p, nil
}

// Frames returns the script length in frames.
func (p *Player) Frames() int { return p.totalFrames }

// Position returns the number of frames rendered so far.
func (p *Player) Position() int { return p.frame }

// Done reports whether the whole script has been rendered.
func (p *Player) Done() bool { return p.frame >= p.totalFrames }

// Next renders the next block and returns it. The slice is reused by the
// following call. It returns nil once the script is done.
func (p *Player) Next() []float64 {
	if p.Done() {
		return nil
	}
	if !p.released && p.frame >= p.holdFrames {
		p.voice.NoteOff(p.params())
		p.released = true
	}

	n := len(p.block)
	if rest := p.totalFrames - p.frame; rest < n {
		n = rest
	}
	if !p.released {
		if rest := p.holdFrames - p.frame; rest < n {
			n = rest
		}
	}

	out := p.block[:n]
	p.voice.RenderFloat(p.params(), out)
	p.frame += n
	return out
}

// RenderAll renders the remaining script into a new slice.
func (p *Player) RenderAll() []float64 {
	out := make([]float64, 0, p.totalFrames-p.frame)
	for block := p.Next(); block != nil; block = p.Next() {
		out = append(out, block...)
	}
	return out
}

func (p *Player) params() osc.NoteParams {
	lfo := 0.0
	if p.script.LFODepth > 0 && p.script.LFORate > 0 {
		t := float64(p.frame) / p.voice.SampleRate()
		lfo = p.script.LFODepth * math.Sin(2*math.Pi*p.script.LFORate*t)
	}
	return osc.NewNoteParams(p.script.Note, p.script.Fine, lfo)
}
