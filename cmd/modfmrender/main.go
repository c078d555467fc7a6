// Command modfmrender renders one scripted note of a ModFM voice to a WAV
// file and prints the spectral peaks of the sustained part.
//
// Usage:
//
//	modfmrender [flags]
//
// Examples:
//
//	modfmrender -variant formant -note 48 -o bass.wav
//	modfmrender -variant extended -p param1=2 -p shape=700 -p amount=60
//	modfmrender -variant phasesync -lfo-rate 3 -lfo-depth 0.4 -bits 16
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/fastmath"
	"github.com/cwbudde/algo-modfm/dsp/osc"
	"github.com/cwbudde/algo-modfm/dsp/pcm"
	"github.com/cwbudde/algo-modfm/internal/render"
	"github.com/cwbudde/algo-modfm/measure/level"
	"github.com/cwbudde/algo-modfm/measure/spectral"
)

func main() {
	var settings render.Settings
	def := core.DefaultProcessorConfig()
	variantName := flag.String("variant", "formant", "voice variant: extended, formant, phasesync, vowel")
	note := flag.Int("note", 60, "note number")
	fine := flag.Uint("fine", 0, "fine pitch offset in 1/255 semitone")
	hold := flag.Float64("hold", 1.0, "note-on duration in seconds")
	tail := flag.Float64("tail", 0.5, "release tail in seconds")
	sampleRate := flag.Int("rate", int(def.SampleRate), "sample rate in Hz")
	block := flag.Int("block", def.BlockSize, "frames per render call")
	bits := flag.Int("bits", 24, "WAV bit depth (16 or 24)")
	lfoRate := flag.Float64("lfo-rate", 0, "host LFO rate in Hz")
	lfoDepth := flag.Float64("lfo-depth", 0, "host LFO depth in [0, 1]")
	fast := flag.Bool("fast", false, "use fast approximate math")
	dither := flag.Bool("dither", true, "apply triangular dither when quantizing")
	peaks := flag.Int("peaks", 6, "number of spectral peaks to print")
	outPath := flag.String("o", "modfm.wav", "output WAV path")
	flag.Var(&settings, "p", "parameter setting name=value (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: modfmrender [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders one note of a ModFM voice to a WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nParameters: param1..param6, attack, decay, amount, shape, shiftshape\n")
	}
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if *bits != 16 && *bits != 24 {
		fmt.Fprintf(os.Stderr, "error: unsupported bit depth %d\n", *bits)
		os.Exit(1)
	}
	if *fine > 255 {
		fmt.Fprintf(os.Stderr, "error: fine must be in [0, 255]: %d\n", *fine)
		os.Exit(1)
	}

	variant, err := osc.ParseVariant(*variantName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(*sampleRate)),
		core.WithBlockSize(*block),
	)
	rate := int(cfg.SampleRate)

	opts := []osc.Option{osc.WithSampleRate(cfg.SampleRate)}
	if *fast {
		opts = append(opts, osc.WithMath(fastmath.Fast{}))
	}
	voice, err := osc.New(variant, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	player, err := render.NewPlayer(voice, render.Script{
		Note:      *note,
		Fine:      uint8(*fine),
		Hold:      *hold,
		Tail:      *tail,
		LFORate:   *lfoRate,
		LFODepth:  *lfoDepth,
		BlockSize: cfg.BlockSize,
		Settings:  settings,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	samples := player.RenderAll()
	log.Printf("rendered %d frames of %v note %d", len(samples), variant, *note)

	quant, err := pcm.NewQuantizer(pcm.WithBitDepth(*bits), pcm.WithDither(*dither))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := writeWAV(*outPath, samples, rate, quant); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("wrote %s", *outPath)

	holdFrames := int(*hold * cfg.SampleRate)
	if err := printSpectrum(samples[:min(holdFrames, len(samples))], cfg.SampleRate, *peaks); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func writeWAV(path string, samples []float64, sampleRate int, quant *pcm.Quantizer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: quant.BitDepth(),
	}
	quant.QuantizeBlock(buf.Data, samples)

	enc := wav.NewEncoder(f, sampleRate, quant.BitDepth(), 1, 1)
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return f.Close()
}

func printSpectrum(samples []float64, sampleRate float64, peaks int) error {
	n := 1
	for n*2 <= len(samples) && n < 1<<16 {
		n *= 2
	}
	if n < 2 {
		return fmt.Errorf("too few samples to analyze: %d", len(samples))
	}
	segment := samples[len(samples)-n:]

	a, err := spectral.NewAnalyzer(sampleRate, spectral.WithPeaks(peaks))
	if err != nil {
		return err
	}
	res, err := a.Analyze(segment)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Peak\tFrequency [Hz]\tLevel [dB]\n")
	fmt.Fprintf(tw, "----\t--------------\t----------\n")
	for i, p := range res.Peaks {
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\n", i+1, p.Frequency, p.Level)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	st := level.Calculate(samples)
	fmt.Printf("\ncentroid %.1f Hz, %d-point FFT\n", res.Centroid, n)
	fmt.Printf("peak %.2f dBFS, rms %.2f dBFS, dc %.4f, crest %.2f\n", st.PeakdB, st.RMSdB, st.DC, st.CrestFactor)
	return nil
}
