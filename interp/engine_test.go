package interp

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestFallbackLinearOnly(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 10, 20}

	if _, err := New(x, y, WithKind(KindCubic), WithEngine(&Fallback{})); !errors.Is(err, ErrKindUnsupported) {
		t.Fatalf("fallback must reject non-linear kinds at construction, got %v", err)
	}
}

func TestFallbackClampsAndWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	engine := &Fallback{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	p, err := New([]float64{0, 1, 2}, []float64{0, 10, 20},
		WithEngine(engine))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// bounds policy is ignored: out-of-range clamps instead of failing
	got, err := p.Eval([]float64{-5, 0.5, 7})
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if got[0] != 0 || math.Abs(got[1]-5) > 1e-12 || got[2] != 20 {
		t.Fatalf("unexpected fallback output: %v", got)
	}

	if _, err := p.Eval([]float64{1.5}); err != nil {
		t.Fatalf("second Eval error: %v", err)
	}

	if n := strings.Count(buf.String(), "fallback interpolation engine"); n != 1 {
		t.Fatalf("expected exactly one capability warning, got %d: %q", n, buf.String())
	}
}

func TestHermite4Endpoints(t *testing.T) {
	if got := Hermite4(0, 5, 1, 2, 7); got != 1 {
		t.Fatalf("Hermite4(0)=%f want=1", got)
	}
	if got := Hermite4(1, 5, 1, 2, 7); math.Abs(got-2) > 1e-12 {
		t.Fatalf("Hermite4(1)=%f want=2", got)
	}
}
