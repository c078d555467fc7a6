// Package envelope provides the linear attack/decay generator that drives
// the modulation amount of the ModFM oscillators.
//
// The generator rises linearly from 0 to 1 while the note is held and
// falls linearly back to 0 after [Linear.Release]. It is stepped exactly
// once per output sample and never allocates.
package envelope
