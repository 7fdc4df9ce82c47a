package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/interp"
	"github.com/cwbudde/algo-spectra/nddata"
)

func TestInterpolateLinear(t *testing.T) {
	s := mustSpectrum(t, []float64{0, 10, 20},
		WithDispersion([]float64{0, 1, 2}, "nm"),
		WithUnit("Jy"),
		WithMeta(nddata.Meta{"object": "vega"}))

	grid := []float64{0.5, 1, 1.5}
	out, err := s.Interpolate(grid)
	if err != nil {
		t.Fatalf("Interpolate error: %v", err)
	}

	want := []float64{5, 10, 15}
	for i := range want {
		if math.Abs(out.Flux()[i]-want[i]) > 1e-12 {
			t.Fatalf("flux[%d]=%f want=%f", i, out.Flux()[i], want[i])
		}
	}

	if out.DispersionUnit() != "nm" || out.Unit() != "Jy" {
		t.Fatalf("unit tags must carry over: %q %q", out.DispersionUnit(), out.Unit())
	}
	if out.Meta()["object"] != "vega" {
		t.Fatalf("metadata must carry over: %v", out.Meta())
	}

	grid[0] = 999
	if out.Dispersion()[0] != 0.5 {
		t.Fatalf("result must own its dispersion storage: %v", out.Dispersion())
	}
}

func TestInterpolateResamplesErrorAndMask(t *testing.T) {
	s := mustSpectrum(t, []float64{0, 10, 20},
		WithDispersion([]float64{0, 1, 2}, "nm"),
		WithError([]float64{1, 1, 3}),
		WithMask([]bool{false, true, false}))

	out, err := s.Interpolate([]float64{0.4, 0.9, 1.5})
	if err != nil {
		t.Fatalf("Interpolate error: %v", err)
	}

	// error follows the same linear interpolation
	wantErr := []float64{1, 1, 2}
	for i := range wantErr {
		if math.Abs(out.Err()[i]-wantErr[i]) > 1e-12 {
			t.Fatalf("err[%d]=%f want=%f", i, out.Err()[i], wantErr[i])
		}
	}

	// mask follows the nearest original sample; ties go to the upper neighbor
	wantMask := []bool{false, true, false}
	for i := range wantMask {
		if out.Mask()[i] != wantMask[i] {
			t.Fatalf("mask[%d]=%v want=%v", i, out.Mask()[i], wantMask[i])
		}
	}
}

func TestInterpolateBoundsPolicy(t *testing.T) {
	s := mustSpectrum(t, []float64{0, 10}, WithDispersion([]float64{0, 1}, "nm"))

	if _, err := s.Interpolate([]float64{-1}); !errors.Is(err, interp.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}

	out, err := s.Interpolate([]float64{-1, 0.5}, WithFill(math.NaN()))
	if err != nil {
		t.Fatalf("Interpolate error: %v", err)
	}
	if !math.IsNaN(out.Flux()[0]) || math.Abs(out.Flux()[1]-5) > 1e-12 {
		t.Fatalf("fill policy mismatch: %v", out.Flux())
	}
}

func TestInterpolateCubic(t *testing.T) {
	s := mustSpectrum(t, []float64{0, 1, 2, 3}, WithDispersion([]float64{0, 1, 2, 3}, "nm"))

	out, err := s.Interpolate([]float64{1.5}, WithKind(interp.KindCubic))
	if err != nil {
		t.Fatalf("Interpolate error: %v", err)
	}
	if math.Abs(out.Flux()[0]-1.5) > 1e-12 {
		t.Fatalf("cubic on collinear data must stay linear: %v", out.Flux())
	}
}

func TestInterpolateFallbackEngine(t *testing.T) {
	s := mustSpectrum(t, []float64{0, 10}, WithDispersion([]float64{0, 1}, "nm"))

	// degraded engine clamps instead of failing out of range
	out, err := s.Interpolate([]float64{-1, 2}, WithEngine(&interp.Fallback{}))
	if err != nil {
		t.Fatalf("Interpolate error: %v", err)
	}
	if out.Flux()[0] != 0 || out.Flux()[1] != 10 {
		t.Fatalf("fallback must clamp to boundary values: %v", out.Flux())
	}

	_, err = s.Interpolate([]float64{0.5},
		WithEngine(&interp.Fallback{}), WithKind(interp.KindCubic))
	if !errors.Is(err, interp.ErrKindUnsupported) {
		t.Fatalf("expected ErrKindUnsupported, got %v", err)
	}
}

func TestInterpolateInPlaceUnimplemented(t *testing.T) {
	s := mustSpectrum(t, []float64{0, 10}, WithDispersion([]float64{0, 1}, "nm"))

	if err := s.InterpolateInPlace([]float64{0.5}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}
