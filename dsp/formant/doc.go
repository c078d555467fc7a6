// Package formant holds the vowel formant tables used by the formant-bearing
// ModFM oscillators.
//
// The bank has four vocal registers (bass, tenor, alto, soprano). Each
// register describes four formants, and each formant carries its center
// frequency, bandwidth and relative amplitude at six points along a
// continuous "formant shape" control. The first and last points are the
// same vowel, so sweeping the shape control cycles smoothly through
// a, e, i, o, u and back to a.
//
// Registers are chosen either explicitly or per note with [Select].
package formant
