package spectral

import (
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-modfm/dsp/core"
)

const (
	defaultMinHz = 20.0
	defaultPeaks = 8
)

// Config controls an Analyzer.
type Config struct {
	SampleRate float64
	// FFTSize is the transform length. Zero selects the next power of two
	// at or above the signal length.
	FFTSize int
	// MinHz and MaxHz bound the band searched for peaks and used for the
	// centroid. MaxHz <= 0 means Nyquist.
	MinHz float64
	MaxHz float64
	// Peaks is the maximum number of peaks reported.
	Peaks int
}

// Option mutates a Config.
type Option func(*Config)

// WithFFTSize fixes the transform length. It must be a power of two not
// smaller than the analyzed signal.
func WithFFTSize(n int) Option {
	return func(cfg *Config) { cfg.FFTSize = n }
}

// WithRange limits peak search and centroid to [minHz, maxHz].
func WithRange(minHz, maxHz float64) Option {
	return func(cfg *Config) {
		cfg.MinHz = minHz
		cfg.MaxHz = maxHz
	}
}

// WithPeaks sets the maximum number of reported peaks.
func WithPeaks(n int) Option {
	return func(cfg *Config) { cfg.Peaks = n }
}

// Peak is one local maximum of the magnitude spectrum.
type Peak struct {
	Frequency float64
	// Level is the peak magnitude in dB relative to the strongest peak.
	Level float64

	magnitude float64
}

// Result holds the analysis of one signal.
type Result struct {
	// Peaks are ordered by descending magnitude.
	Peaks []Peak
	// Centroid is the magnitude-weighted mean frequency in the band.
	Centroid float64
	// BinHz is the frequency spacing of the transform.
	BinHz float64
	// RMS is the root mean square of the unwindowed signal.
	RMS float64
}

// Strongest returns the strongest peak, or false when none was found.
func (r Result) Strongest() (Peak, bool) {
	if len(r.Peaks) == 0 {
		return Peak{}, false
	}
	return r.Peaks[0], true
}

// Analyzer computes spectral features of real signals.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer validates the configuration and returns an analyzer.
func NewAnalyzer(sampleRate float64, opts ...Option) (*Analyzer, error) {
	cfg := Config{
		SampleRate: sampleRate,
		MinHz:      defaultMinHz,
		Peaks:      defaultPeaks,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("spectral: sample rate must be > 0 and finite: %f", sampleRate)
	}
	if cfg.FFTSize < 0 || (cfg.FFTSize > 0 && !isPowerOf2(cfg.FFTSize)) {
		return nil, fmt.Errorf("spectral: fft size must be a power of two: %d", cfg.FFTSize)
	}
	if cfg.MinHz < 0 || (cfg.MaxHz > 0 && cfg.MaxHz <= cfg.MinHz) {
		return nil, fmt.Errorf("spectral: invalid range [%f, %f]", cfg.MinHz, cfg.MaxHz)
	}
	if cfg.Peaks <= 0 {
		return nil, fmt.Errorf("spectral: peak count must be > 0: %d", cfg.Peaks)
	}
	return &Analyzer{cfg: cfg}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Analyze windows and transforms signal and returns its peaks and centroid.
func (a *Analyzer) Analyze(signal []float64) (Result, error) {
	if len(signal) < 2 {
		return Result{}, fmt.Errorf("spectral: signal too short: %d samples", len(signal))
	}

	fftSize := a.cfg.FFTSize
	if fftSize == 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < len(signal) {
		return Result{}, fmt.Errorf("spectral: fft size %d shorter than signal %d", fftSize, len(signal))
	}

	mag, err := magnitudeSpectrum(signal, fftSize)
	if err != nil {
		return Result{}, err
	}

	binHz := a.cfg.SampleRate / float64(fftSize)
	lo, hi := a.band(binHz, len(mag))

	res := Result{
		BinHz:    binHz,
		RMS:      rms(signal),
		Centroid: centroid(mag, lo, hi, binHz),
		Peaks:    findPeaks(mag, lo, hi, binHz, a.cfg.Peaks),
	}
	return res, nil
}

func (a *Analyzer) band(binHz float64, bins int) (int, int) {
	lo := int(math.Ceil(a.cfg.MinHz / binHz))
	hi := bins - 1
	if a.cfg.MaxHz > 0 {
		hi = int(math.Floor(a.cfg.MaxHz / binHz))
	}
	if lo < 1 {
		lo = 1
	}
	if hi > bins-1 {
		hi = bins - 1
	}
	return lo, hi
}

// magnitudeSpectrum returns |X[k]| for bins 0..fftSize/2 of the
// Hann-windowed signal.
func magnitudeSpectrum(signal []float64, fftSize int) ([]float64, error) {
	windowed := make([]float64, len(signal))
	copy(windowed, signal)
	vecmath.MulBlockInPlace(windowed, hann(len(signal)))

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectral: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectral: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// hann returns a symmetric Hann window.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	scale := 2 * math.Pi / float64(n-1)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(scale*float64(i))
	}
	return w
}

func centroid(mag []float64, lo, hi int, binHz float64) float64 {
	var num, den float64
	for k := lo; k <= hi; k++ {
		num += float64(k) * binHz * mag[k]
		den += mag[k]
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func findPeaks(mag []float64, lo, hi int, binHz float64, limit int) []Peak {
	var peaks []Peak
	for k := lo; k <= hi; k++ {
		if k < 1 || k >= len(mag)-1 {
			continue
		}
		if mag[k] <= 0 || mag[k] < mag[k-1] || mag[k] <= mag[k+1] {
			continue
		}
		offset := parabolicOffset(mag[k-1], mag[k], mag[k+1])
		peaks = append(peaks, Peak{
			Frequency: (float64(k) + offset) * binHz,
			magnitude: mag[k],
		})
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].magnitude > peaks[j].magnitude
	})
	if len(peaks) > limit {
		peaks = peaks[:limit]
	}
	if len(peaks) > 0 {
		ref := peaks[0].magnitude
		for i := range peaks {
			peaks[i].Level = 20 * math.Log10(peaks[i].magnitude/ref)
		}
	}
	return peaks
}

// parabolicOffset fits a parabola through three log magnitudes and returns
// the vertex offset from the center bin in [-0.5, 0.5].
func parabolicOffset(a, b, c float64) float64 {
	const floor = 1e-300
	la := math.Log(math.Max(a, floor))
	lb := math.Log(math.Max(b, floor))
	lc := math.Log(math.Max(c, floor))
	den := la - 2*lb + lc
	if den >= 0 {
		return 0
	}
	p := 0.5 * (la - lc) / den
	return math.Max(-0.5, math.Min(0.5, p))
}

func rms(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
