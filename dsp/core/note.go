package core

import "math"

const (
	// MaxNote is the highest note number accepted by NoteToHz.
	MaxNote = 151
	// MaxNoteHz caps the converted frequency just below Nyquist at 48 kHz.
	MaxNoteHz = 23679.643054
	fineSteps = 255.0
)

// NoteToHz converts a note number and a fine offset (1/255 of the way to the
// next semitone) into Hz. The fine offset interpolates linearly between the
// two equal-tempered semitone frequencies, A4 (69) = 440 Hz.
func NoteToHz(note int, fine uint8) float64 {
	if note < 0 {
		note = 0
	}
	if note > MaxNote {
		note = MaxNote
	}
	f0 := semitoneHz(note)
	f1 := semitoneHz(note + 1)
	f := f0 + (f1-f0)*float64(fine)/fineSteps
	if f > MaxNoteHz {
		return MaxNoteHz
	}
	return f
}

// NoteToW0 returns the per-sample phase increment (cycles per sample) for a
// note at the given sample rate.
func NoteToW0(note int, fine uint8, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return NoteToHz(note, fine) / sampleRate
}

func semitoneHz(note int) float64 {
	return 440 * math.Exp2(float64(note-69)/12)
}
