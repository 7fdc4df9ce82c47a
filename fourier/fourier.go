package fourier

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"

	"github.com/cwbudde/algo-spectra/axis"
	"github.com/cwbudde/algo-spectra/nddata"
	"github.com/cwbudde/algo-spectra/spectrum"
)

const eps = 1e-12

var (
	// ErrEmptySignal indicates an empty input signal.
	ErrEmptySignal = errors.New("fourier: signal must not be empty")
	// ErrBadSampleRate indicates a non-positive sample rate.
	ErrBadSampleRate = errors.New("fourier: sample rate must be > 0")
	// ErrBadFFTSize indicates an FFT size that is not a power of two covering the signal.
	ErrBadFFTSize = errors.New("fourier: fft size must be a power of two >= signal length")
)

type config struct {
	fftSize    int
	windowType window.Type
	fluxUnit   string
}

func defaultConfig() config {
	return config{windowType: window.TypeHann}
}

// Option configures spectrum computation.
type Option func(*config)

// WithFFTSize overrides the FFT size. It must be a power of two no smaller
// than the signal length; the default is the next power of two.
func WithFFTSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.fftSize = n
		}
	}
}

// WithWindow selects the analysis window (Hann by default).
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.windowType = t
	}
}

// WithFluxUnit sets the unit tag of the magnitude values.
func WithFluxUnit(unit string) Option {
	return func(cfg *config) {
		cfg.fluxUnit = unit
	}
}

// Magnitude computes the one-sided magnitude spectrum of a time-domain signal.
//
// The signal is windowed, zero-padded to the FFT size and transformed.
// Magnitudes are normalized by the coherent window gain with interior bins
// doubled, so a full-scale sine reads close to its amplitude at its bin.
// The result has fftSize/2+1 samples and a linear frequency axis in Hz.
func Magnitude(signal []float64, sampleRate float64, opts ...Option) (*spectrum.Spectrum, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrBadSampleRate, sampleRate)
	}

	fftSize := cfg.fftSize
	if fftSize == 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < len(signal) || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadFFTSize, fftSize)
	}

	coeffs := window.Generate(cfg.windowType, len(signal), window.WithPeriodic())
	sum := 0.0
	for _, w := range coeffs {
		sum += w
	}

	in := make([]complex128, fftSize)
	for i, s := range signal {
		in[i] = complex(s*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fourier: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fourier: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	norm := math.Max(sum, eps)
	mag := make([]float64, bins)
	for k := range mag {
		m := cmplx.Abs(out[k]) / norm
		if k > 0 && k < bins-1 {
			m *= 2
		}
		mag[k] = m
	}

	return spectrum.New(mag,
		spectrum.WithAxisMap(axis.Linear{
			Start: 0,
			Step:  sampleRate / float64(fftSize),
			N:     bins,
			Unit:  "Hz",
		}),
		spectrum.WithUnit(cfg.fluxUnit),
		spectrum.WithMeta(nddata.Meta{
			"fftsize":    fftSize,
			"samplerate": sampleRate,
		}),
	)
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
