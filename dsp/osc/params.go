package osc

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-modfm/dsp/core"
)

// ParamID identifies a host parameter slot.
type ParamID int

const (
	Param1 ParamID = iota
	Param2
	Param3
	Param4
	Param5
	Param6
	ParamShape
	ParamShiftShape
)

// Slots 4, 5 and 6 mean the same in every variant.
const (
	ParamAttack = Param4
	ParamDecay  = Param5
	ParamAmount = Param6
)

// String returns a short slot name.
func (id ParamID) String() string {
	switch id {
	case Param1, Param2, Param3, Param4, Param5, Param6:
		return fmt.Sprintf("param%d", int(id)+1)
	case ParamShape:
		return "shape"
	case ParamShiftShape:
		return "shiftshape"
	default:
		return fmt.Sprintf("ParamID(%d)", int(id))
	}
}

// ParseParamID resolves a slot by the name String returns. The aliases
// attack, decay and amount name slots 4, 5 and 6.
func ParseParamID(name string) (ParamID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "attack":
		return ParamAttack, nil
	case "decay":
		return ParamDecay, nil
	case "amount":
		return ParamAmount, nil
	}
	for id := Param1; id <= ParamShiftShape; id++ {
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("osc: unknown parameter %q", name)
}

// Variant selects the spectral-shaping component of a voice.
type Variant int

const (
	Extended Variant = iota
	Formant
	PhaseSync
	Vowel
)

// Variants lists every variant in declaration order.
var Variants = []Variant{Extended, Formant, PhaseSync, Vowel}

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Extended:
		return "extended"
	case Formant:
		return "formant"
	case PhaseSync:
		return "phasesync"
	case Vowel:
		return "vowel"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant resolves a variant by case-insensitive name.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range Variants {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("osc: unknown variant %q", name)
}

// Controls are the last values set through the parameter surface.
// Percent-style controls are normalized to [0, 1].
type Controls struct {
	// Extended.
	CarrierRatio float64
	ModRatio     float64
	ModFine      float64
	R            float64
	S            float64

	// Formant, PhaseSync and Vowel.
	ShiftMax  int
	Shift     float64
	Register  int
	TrackMode int

	// Shared envelope controls.
	Attack float64
	Decay  float64
	Amount float64

	// Shape and ShiftShape are the two continuous knobs, normalized.
	Shape      float64
	ShiftShape float64
}

func defaultControls() Controls {
	return Controls{
		CarrierRatio: 1,
		ModRatio:     1,
		ModFine:      1,
		R:            0,
		S:            1,
	}
}

// percent decodes a 0..100 host value into [0, 1].
func percent(value uint16) float64 {
	return core.Clamp01(float64(value) * 0.01)
}

// NoteParams is the per-callback note state supplied by the host.
type NoteParams struct {
	// Pitch packs the note number in the high byte and the fine offset
	// (1/255 semitone steps) in the low byte.
	Pitch uint16
	// ShapeLFO is the host LFO value in q31.
	ShapeLFO int32
}

// NewNoteParams packs a note, a fine offset and an LFO value in [-1, 1].
func NewNoteParams(note int, fine uint8, lfo float64) NoteParams {
	if note < 0 {
		note = 0
	}
	if note > 255 {
		note = 255
	}
	return NoteParams{
		Pitch:    uint16(note)<<8 | uint16(fine),
		ShapeLFO: core.FloatToQ31(lfo),
	}
}

// Note returns the note number.
func (p NoteParams) Note() int { return int(p.Pitch >> 8) }

// Fine returns the fine pitch offset.
func (p NoteParams) Fine() uint8 { return uint8(p.Pitch & 0xFF) }

// LFO returns the decoded LFO value.
func (p NoteParams) LFO() float64 { return core.Q31ToFloat(p.ShapeLFO) }
