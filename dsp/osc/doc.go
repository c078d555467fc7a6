// Package osc assembles the ModFM building blocks into monophonic
// oscillator voices with a host-style control surface.
//
// Four variants share one [Voice] and differ only in their [Shaper]:
//
//   - Extended: asymmetric ModFM with carrier/modulator ratios and a
//     single shape control morphing between symmetric and one-sided
//     spectra.
//   - Formant: four vowel formants from the register tables, index from
//     the power-of-two bandwidth formula.
//   - PhaseSync: one tracking formant whose center frequency, bandwidth and
//     LFO depth are ramped per sample.
//   - Vowel: the formant tables with every per-formant value ramped across
//     the buffer and the exponential bandwidth formula.
//
// A Voice is driven the way an audio host drives a plugin: SetParameter and
// NoteOn/NoteOff between callbacks, Render once per callback. Rendering
// never allocates or blocks. A Voice is not safe for concurrent use;
// the caller serializes all calls.
package osc
