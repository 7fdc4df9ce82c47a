package fourier

import (
	"errors"
	"math"
	"testing"
)

func sine(freq, rate float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freq / rate
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	return out
}

func TestMagnitudePeak(t *testing.T) {
	const (
		rate = 1024.0
		n    = 1024
		freq = 100.0
	)

	spec, err := Magnitude(sine(freq, rate, n), rate)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}

	if spec.Len() != n/2+1 {
		t.Fatalf("expected one-sided spectrum of %d bins, got %d", n/2+1, spec.Len())
	}

	peakBin := 0
	for i, v := range spec.Flux() {
		if v > spec.Flux()[peakBin] {
			peakBin = i
		}
	}
	if peakBin != 100 {
		t.Fatalf("peak at bin %d, want 100", peakBin)
	}

	// bin-exact sine normalized by coherent window gain reads its amplitude
	if math.Abs(spec.Flux()[peakBin]-1) > 1e-6 {
		t.Fatalf("peak magnitude %f, want 1", spec.Flux()[peakBin])
	}
}

func TestMagnitudeAxis(t *testing.T) {
	const rate = 48000.0

	spec, err := Magnitude(sine(1000, rate, 4096), rate)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}

	if spec.DispersionUnit() != "Hz" {
		t.Fatalf("dispersion unit %q, want Hz", spec.DispersionUnit())
	}

	binHz := rate / 4096
	if math.Abs(spec.Dispersion()[1]-binHz) > 1e-9 || spec.Dispersion()[0] != 0 {
		t.Fatalf("unexpected frequency axis: %v", spec.Dispersion()[:2])
	}

	if spec.Meta()["fftsize"] != 4096 {
		t.Fatalf("meta must record the fft size: %v", spec.Meta())
	}
}

func TestMagnitudeZeroPads(t *testing.T) {
	spec, err := Magnitude(sine(100, 1000, 1000), 1000)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}
	if spec.Len() != 1024/2+1 {
		t.Fatalf("signal must pad to the next power of two: %d bins", spec.Len())
	}
}

func TestMagnitudeArgumentErrors(t *testing.T) {
	if _, err := Magnitude(nil, 48000); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}

	if _, err := Magnitude([]float64{1}, 0); !errors.Is(err, ErrBadSampleRate) {
		t.Fatalf("expected ErrBadSampleRate, got %v", err)
	}

	if _, err := Magnitude(sine(10, 100, 64), 100, WithFFTSize(100)); !errors.Is(err, ErrBadFFTSize) {
		t.Fatalf("expected ErrBadFFTSize for non-power-of-two, got %v", err)
	}

	if _, err := Magnitude(sine(10, 100, 64), 100, WithFFTSize(32)); !errors.Is(err, ErrBadFFTSize) {
		t.Fatalf("expected ErrBadFFTSize for undersized fft, got %v", err)
	}
}
