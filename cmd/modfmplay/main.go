// Command modfmplay plays one scripted note of a ModFM voice on the default
// audio device.
//
// Usage:
//
//	modfmplay [flags]
//
// A render goroutine fills 16-bit blocks and a writer goroutine feeds them
// to the device. Ctrl-C stops playback.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/oto"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/osc"
	"github.com/cwbudde/algo-modfm/dsp/pcm"
	"github.com/cwbudde/algo-modfm/internal/render"
	"github.com/cwbudde/algo-modfm/measure/level"
)

const (
	channelNum      = 1
	bitDepthInBytes = 2
	queueDepth      = 8
)

func main() {
	var settings render.Settings
	def := core.DefaultProcessorConfig()
	variantName := flag.String("variant", "formant", "voice variant: extended, formant, phasesync, vowel")
	note := flag.Int("note", 60, "note number")
	hold := flag.Float64("hold", 1.5, "note-on duration in seconds")
	tail := flag.Float64("tail", 1.0, "release tail in seconds")
	sampleRate := flag.Int("rate", int(def.SampleRate), "sample rate in Hz")
	block := flag.Int("block", 4*def.BlockSize, "frames per render call")
	lfoRate := flag.Float64("lfo-rate", 0, "host LFO rate in Hz")
	lfoDepth := flag.Float64("lfo-depth", 0, "host LFO depth in [0, 1]")
	flag.Var(&settings, "p", "parameter setting name=value (repeatable)")
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	variant, err := osc.ParseVariant(*variantName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(*sampleRate)),
		core.WithBlockSize(*block),
	)
	voice, err := osc.New(variant, osc.WithSampleRate(cfg.SampleRate))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	player, err := render.NewPlayer(voice, render.Script{
		Note:      *note,
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalCh)
	go func() {
		select {
		case sig := <-signalCh:
			log.Printf("caught signal %s: stopping", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var meter level.Meter
	if err := play(ctx, player, &meter, int(cfg.SampleRate), cfg.BlockSize); err != nil {
		log.Fatalf("error: %v\n", err)
	}
	st := meter.Result()
	log.Printf("played %d frames of %v note %d: peak %.2f dBFS, rms %.2f dBFS",
		st.Frames, variant, *note, st.PeakdB, st.RMSdB)
}

func play(ctx context.Context, player *render.Player, meter *level.Meter, sampleRate, block int) error {
	quant, err := pcm.NewQuantizer(pcm.WithBitDepth(8 * bitDepthInBytes))
	if err != nil {
		return err
	}

	bufBytes := block * channelNum * bitDepthInBytes * queueDepth
	otoContext, err := oto.NewContext(sampleRate, channelNum, bitDepthInBytes, bufBytes)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	defer func() {
		if err := otoContext.Close(); err != nil {
			log.Printf("error: %v", err)
		}
	}()

	out := otoContext.NewPlayer()
	defer func() {
		if err := out.Close(); err != nil {
			log.Printf("error: %v", err)
		}
	}()

	blocks := make(chan []byte, queueDepth)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(blocks)
		for samples := player.Next(); samples != nil; samples = player.Next() {
			meter.Update(samples)
			buf := make([]byte, len(samples)*bitDepthInBytes)
			quant.PutLE(buf, samples)
			select {
			case blocks <- buf:
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case buf, ok := <-blocks:
				if !ok {
					return nil
				}
				if _, err := out.Write(buf); err != nil {
					return fmt.Errorf("write audio: %w", err)
				}
			case <-ctx.Done():
				return nil
			}
		}
	})
	return g.Wait()
}
