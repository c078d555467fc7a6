// Package level meters rendered voice output in the time domain: peak, RMS,
// DC offset and zero crossings, accumulated block by block.
package level

import (
	"math"

	"github.com/cwbudde/algo-modfm/dsp/core"
)

// Stats summarizes a signal.
type Stats struct {
	Frames int
	// DC is the mean; ModFM kernels are not zero-mean in general.
	DC     float64
	RMS    float64
	RMSdB  float64
	Peak   float64
	PeakdB float64
	// PeakPos is the frame index of the first sample reaching Peak.
	PeakPos       int
	CrestFactor   float64
	ZeroCrossings int
}

// Meter accumulates Stats across blocks. The zero value is ready to use.
type Meter struct {
	n             int
	sum           float64
	sumSq         float64
	peak          float64
	peakPos       int
	last          float64
	zeroCrossings int
}

// Update adds a block of samples.
func (m *Meter) Update(samples []float64) {
	for _, x := range samples {
		if m.n > 0 && m.last*x < 0 {
			m.zeroCrossings++
		}
		if a := math.Abs(x); a > m.peak {
			m.peak = a
			m.peakPos = m.n
		}
		m.sum += x
		m.sumSq += x * x
		m.last = x
		m.n++
	}
}

// Frames returns the number of samples seen.
func (m *Meter) Frames() int { return m.n }

// Result returns the statistics of everything seen so far.
func (m *Meter) Result() Stats {
	if m.n == 0 {
		return Stats{RMSdB: math.Inf(-1), PeakdB: math.Inf(-1)}
	}
	nf := float64(m.n)
	rms := math.Sqrt(m.sumSq / nf)
	crest := 0.0
	if rms > 0 {
		crest = m.peak / rms
	}
	return Stats{
		Frames:        m.n,
		DC:            m.sum / nf,
		RMS:           rms,
		RMSdB:         core.LinearToDB(rms),
		Peak:          m.peak,
		PeakdB:        core.LinearToDB(m.peak),
		PeakPos:       m.peakPos,
		CrestFactor:   crest,
		ZeroCrossings: m.zeroCrossings,
	}
}

// Reset clears the meter.
func (m *Meter) Reset() { *m = Meter{} }

// Calculate meters a whole signal in one call.
func Calculate(signal []float64) Stats {
	var m Meter
	m.Update(signal)
	return m.Result()
}
