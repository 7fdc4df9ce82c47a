// Command specinfo synthesizes a test tone, computes its magnitude spectrum
// and prints spectral statistics plus samples of an optional frequency slice.
//
// Usage:
//
//	specinfo [flags]
//
// Examples:
//
//	specinfo -freq 1000
//	specinfo -rate 44100 -n 8192 -freq 440 -noise 0.01
//	specinfo -lo 500 -hi 2000 -print 16
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/signal"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/fourier"
	"github.com/cwbudde/algo-spectra/spectrum"
	"github.com/cwbudde/algo-spectra/stats"
)

func main() {
	var (
		rate  = flag.Float64("rate", 48000, "sample rate in Hz")
		n     = flag.Int("n", 4096, "number of signal samples")
		freq  = flag.Float64("freq", 1000, "tone frequency in Hz")
		amp   = flag.Float64("amp", 1.0, "tone amplitude")
		noise = flag.Float64("noise", 0, "white noise amplitude")
		lo    = flag.Float64("lo", math.NaN(), "slice lower bound in Hz")
		hi    = flag.Float64("hi", math.NaN(), "slice upper bound in Hz")
		count = flag.Int("print", 0, "number of spectrum samples to print")
	)
	flag.Parse()

	if err := run(*rate, *freq, *amp, *noise, *n, *lo, *hi, *count); err != nil {
		fmt.Fprintln(os.Stderr, "specinfo:", err)
		os.Exit(1)
	}
}

func run(rate, freq, amp, noise float64, n int, lo, hi float64, printCount int) error {
	gen := signal.NewGenerator(core.WithSampleRate(rate))
	tone, err := gen.Sine(freq, amp, n)
	if err != nil {
		return err
	}
	if noise > 0 {
		dither, err := gen.WhiteNoise(noise, n)
		if err != nil {
			return err
		}
		vecmath.AddBlockInPlace(tone, dither)
	}

	spec, err := fourier.Magnitude(tone, rate)
	if err != nil {
		return err
	}
	if !math.IsNaN(lo) || !math.IsNaN(hi) {
		spec, err = spec.Slice(spectrum.UnitsDispersion, lo, hi, 0)
		if err != nil {
			return err
		}
	}

	st, err := stats.Calculate(spec)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", st.Samples)
	fmt.Fprintf(w, "range\t%.1f to %.1f %s\n",
		spec.Dispersion()[0], spec.Dispersion()[spec.Len()-1], spec.DispersionUnit())
	fmt.Fprintf(w, "peak\t%.6f at %.1f %s\n", st.Max, st.MaxAt, spec.DispersionUnit())
	fmt.Fprintf(w, "mean\t%.6f\n", st.Mean)
	fmt.Fprintf(w, "centroid\t%.1f %s\n", st.Centroid, spec.DispersionUnit())
	fmt.Fprintf(w, "spread\t%.1f %s\n", st.Spread, spec.DispersionUnit())
	fmt.Fprintf(w, "integral\t%.6f\n", st.Integral)

	if printCount > 0 {
		step := spec.Len() / printCount
		if step < 1 {
			step = 1
		}
		fmt.Fprintf(w, "\nfrequency\tmagnitude\n")
		for i := 0; i < spec.Len(); i += step {
			fmt.Fprintf(w, "%.1f\t%.6f\n", spec.Dispersion()[i], spec.Flux()[i])
		}
	}
	return w.Flush()
}
