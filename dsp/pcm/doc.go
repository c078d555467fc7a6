// Package pcm converts normalized oscillator output into signed integer
// PCM for file and device sinks, with optional triangular dither and
// first-order noise shaping.
package pcm
