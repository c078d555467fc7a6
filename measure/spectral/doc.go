// Package spectral measures the spectral envelope of rendered oscillator
// output: the strongest peaks, their frequencies and the spectral centroid.
//
// Signals are Hann-windowed, zero-padded to a power of two and transformed
// with a real-input FFT. Peak frequencies are refined by parabolic
// interpolation of the log magnitude around each local maximum.
package spectral
