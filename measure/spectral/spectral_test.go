package spectral

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/fastmath"
	"github.com/cwbudde/algo-modfm/dsp/osc"
	"github.com/cwbudde/algo-modfm/internal/testutil"
)

const sampleRate = 48000.0

func mustAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(sampleRate, opts...)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	return a
}

func TestNewAnalyzerValidation(t *testing.T) {
	tests := []struct {
		name string
		sr   float64
		opts []Option
	}{
		{"zero sample rate", 0, nil},
		{"nan sample rate", math.NaN(), nil},
		{"fft not power of two", sampleRate, []Option{WithFFTSize(1000)}},
		{"negative fft size", sampleRate, []Option{WithFFTSize(-8)}},
		{"inverted range", sampleRate, []Option{WithRange(5000, 100)}},
		{"negative min", sampleRate, []Option{WithRange(-1, 100)}},
		{"no peaks", sampleRate, []Option{WithPeaks(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAnalyzer(tt.sr, tt.opts...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestAnalyzeRejectsShortInput(t *testing.T) {
	a := mustAnalyzer(t)
	if _, err := a.Analyze([]float64{1}); err == nil {
		t.Fatal("expected error for one-sample signal")
	}

	small := mustAnalyzer(t, WithFFTSize(64))
	if _, err := small.Analyze(make([]float64, 128)); err == nil {
		t.Fatal("expected error for fft shorter than signal")
	}
}

func TestSinePeak(t *testing.T) {
	a := mustAnalyzer(t)
	sig := testutil.DeterministicSine(1000, sampleRate, 0.8, 4096)

	res, err := a.Analyze(sig)
	if err != nil {
		t.Fatal(err)
	}
	peak, ok := res.Strongest()
	if !ok {
		t.Fatal("no peak found")
	}
	if math.Abs(peak.Frequency-1000) > res.BinHz/4 {
		t.Fatalf("peak = %.2f Hz, want 1000 (bin %.2f Hz)", peak.Frequency, res.BinHz)
	}
	if peak.Level != 0 {
		t.Fatalf("strongest peak level = %v dB, want 0", peak.Level)
	}
	if math.Abs(res.Centroid-1000) > 50 {
		t.Fatalf("centroid = %.2f Hz, want ~1000", res.Centroid)
	}
	if math.Abs(res.RMS-0.8/math.Sqrt2) > 1e-2 {
		t.Fatalf("rms = %v, want %v", res.RMS, 0.8/math.Sqrt2)
	}
}

func TestTwoSinesOrderedByLevel(t *testing.T) {
	a := mustAnalyzer(t, WithPeaks(2))
	low := testutil.DeterministicSine(500, sampleRate, 1, 4096)
	high := testutil.DeterministicSine(3000, sampleRate, 0.5, 4096)
	for i := range low {
		low[i] += high[i]
	}

	res, err := a.Analyze(low)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Peaks) != 2 {
		t.Fatalf("got %d peaks, want 2", len(res.Peaks))
	}
	if math.Abs(res.Peaks[0].Frequency-500) > res.BinHz/2 {
		t.Fatalf("first peak = %.2f Hz, want 500", res.Peaks[0].Frequency)
	}
	if math.Abs(res.Peaks[1].Frequency-3000) > res.BinHz/2 {
		t.Fatalf("second peak = %.2f Hz, want 3000", res.Peaks[1].Frequency)
	}
	if math.Abs(res.Peaks[1].Level+6.02) > 1.5 {
		t.Fatalf("second peak level = %.2f dB, want about -6", res.Peaks[1].Level)
	}
}

func TestRangeExcludesPeak(t *testing.T) {
	a := mustAnalyzer(t, WithRange(2000, 8000))
	sig := testutil.DeterministicSine(1000, sampleRate, 1, 4096)
	res, err := a.Analyze(sig)
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := res.Strongest(); ok && math.Abs(p.Frequency-1000) < 100 {
		t.Fatalf("peak %.2f Hz found outside range", p.Frequency)
	}
}

func renderVoice(t *testing.T, v *osc.Voice, note osc.NoteParams, frames int) []float64 {
	t.Helper()
	v.NoteOn(note)
	out := make([]float64, frames)
	block := core.DefaultProcessorConfig().BlockSize
	for i := 0; i < frames; i += block {
		end := min(i+block, frames)
		v.RenderFloat(note, out[i:end])
	}
	return out
}

func TestExtendedZeroIndexIsCarrierSine(t *testing.T) {
	v, err := osc.New(osc.Extended, osc.WithSampleRate(sampleRate), osc.WithMath(fastmath.Exact{}))
	if err != nil {
		t.Fatal(err)
	}
	v.SetParameter(osc.Param1, 2)

	sig := renderVoice(t, v, osc.NewNoteParams(69, 0, 0), 8192)
	res, err := mustAnalyzer(t).Analyze(sig)
	if err != nil {
		t.Fatal(err)
	}
	peak, _ := res.Strongest()
	if math.Abs(peak.Frequency-1320) > res.BinHz/4 {
		t.Fatalf("peak = %.2f Hz, want 1320", peak.Frequency)
	}
	if len(res.Peaks) > 1 && res.Peaks[1].Level > -25 {
		t.Fatalf("second peak at %.2f Hz is %.1f dB, want a pure tone", res.Peaks[1].Frequency, res.Peaks[1].Level)
	}
}

func TestFormantPeakFollowsTable(t *testing.T) {
	tests := []struct {
		name  string
		shape float64
		hz    float64
	}{
		{"open vowel", 0, 600},
		{"closed vowel", 0.4, 250},
	}
	for _, variant := range []osc.Variant{osc.Formant, osc.Vowel} {
		for _, tt := range tests {
			t.Run(variant.String()+"/"+tt.name, func(t *testing.T) {
				v, err := osc.New(variant, osc.WithSampleRate(sampleRate), osc.WithMath(fastmath.Exact{}))
				if err != nil {
					t.Fatal(err)
				}
				c := v.Controls()
				c.Shape = tt.shape
				v.SetControls(c)

				note := osc.NewNoteParams(48, 0, 0)
				fo := core.NoteToHz(48, 0)
				sig := renderVoice(t, v, note, 8192)

				res, err := mustAnalyzer(t).Analyze(sig)
				if err != nil {
					t.Fatal(err)
				}
				peak, _ := res.Strongest()
				if math.Abs(peak.Frequency-tt.hz) > fo {
					t.Fatalf("strongest peak = %.1f Hz, want within %.1f Hz of %v", peak.Frequency, fo, tt.hz)
				}
			})
		}
	}
}
