// Command modfminfo prints the static data behind the ModFM voices: the
// vowel formant bank, the automatic register map and the bandwidth-to-index
// formulas.
//
// Usage:
//
//	modfminfo [flags] [register ...]
//
// Examples:
//
//	modfminfo bass tenor
//	modfminfo -select
//	modfminfo -index -q 0.5
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-modfm/dsp/core"
	"github.com/cwbudde/algo-modfm/dsp/fastmath"
	fbank "github.com/cwbudde/algo-modfm/dsp/formant"
	"github.com/cwbudde/algo-modfm/dsp/modfm"
)

var registers = []fbank.Register{fbank.Bass, fbank.Tenor, fbank.Alto, fbank.Soprano}

func main() {
	showSelect := flag.Bool("select", false, "print the register chosen per note for selectors 4-7")
	showIndex := flag.Bool("index", false, "print modulation indices of both formulas per note")
	q := flag.Float64("q", 0.25, "normalized Q in [0, 1] for -index")
	fast := flag.Bool("fast", false, "use fast approximate math for -index")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: modfminfo [flags] [register ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the formant bank (default), the register map or index tables.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	var err error
	switch {
	case *showSelect:
		err = printSelection(tw)
	case *showIndex:
		var m fastmath.Math = fastmath.Exact{}
		if *fast {
			m = fastmath.Fast{}
		}
		err = printIndex(tw, m, *q)
	default:
		regs, rerr := resolveRegisters(flag.Args())
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", rerr)
			os.Exit(1)
		}
		err = printBank(tw, regs)
	}
	if err == nil {
		err = tw.Flush()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func resolveRegisters(names []string) ([]fbank.Register, error) {
	if len(names) == 0 {
		return registers, nil
	}
	var out []fbank.Register
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		found := false
		for _, r := range registers {
			if r.String() == name {
				out = append(out, r)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown register %q", name)
		}
	}
	return out, nil
}

func printBank(w io.Writer, regs []fbank.Register) error {
	if _, err := fmt.Fprintf(w, "Register\tFormant\tPoint\tFrequency [Hz]\tBandwidth [Hz]\tAmplitude\n"); err != nil {
		return err
	}
	for _, r := range regs {
		table := fbank.Lookup(r)
		for k, p := range table {
			for i := 0; i < fbank.ShapePoints; i++ {
				if _, err := fmt.Fprintf(w, "%v\t%d\t%d\t%.0f\t%.0f\t%.3f\n",
					r, k+1, i, p.Frequency[i], p.Bandwidth[i], p.Amplitude[i]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func printSelection(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Selector\tBass\tTenor\tAlto\tSoprano\n"); err != nil {
		return err
	}
	for sel := fbank.FirstAutoSelector; sel <= fbank.MaxSelector; sel++ {
		pts, _ := fbank.SplitPoints(sel)
		if _, err := fmt.Fprintf(w, "%d\t< %d\t%d-%d\t%d-%d\t>= %d\n",
			sel, pts[0], pts[0], pts[1]-1, pts[1], pts[2]-1, pts[2]); err != nil {
			return err
		}
	}
	return nil
}

func printIndex(w io.Writer, m fastmath.Math, q float64) error {
	powerOfTwo := modfm.PowerOfTwoMapper{Math: m}
	exponential := modfm.ExponentialMapper{Math: m}
	if _, err := fmt.Fprintf(w, "Note\tfo [Hz]\tCenter [Hz]\tBW [Hz]\tIndex pow2\tIndex exp\n"); err != nil {
		return err
	}
	for note := 24; note <= 108; note += 12 {
		fo := core.NoteToHz(note, 0)
		for _, mult := range []float64{2, 5, 10} {
			center := fo * mult
			bw := modfm.Bandwidth(center, q)
			if _, err := fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\t%.4f\t%.4f\n",
				note, fo, center, bw, powerOfTwo.Index(fo, bw), exponential.Index(fo, bw)); err != nil {
				return err
			}
		}
	}
	return nil
}
