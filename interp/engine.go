package interp

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Engine evaluates interpolation queries for an [Interpolator].
type Engine interface {
	// Supports reports whether the engine implements kind.
	Supports(kind Kind) bool
	// Eval evaluates the samples (x, y) at the query points q under p.
	// The sample arrays are validated by the caller.
	Eval(x, y, q []float64, p Policy) ([]float64, error)
}

// native is the default full-featured engine.
type native struct{}

func (native) Supports(Kind) bool { return true }

func (native) Eval(x, y, q []float64, p Policy) ([]float64, error) {
	out := make([]float64, len(q))
	for i, v := range q {
		if v < x[0] || v > x[len(x)-1] {
			if p.BoundsError {
				return nil, fmt.Errorf("%w: %g outside [%g, %g]",
					ErrOutOfBounds, v, x[0], x[len(x)-1])
			}
			out[i] = p.Fill
			continue
		}
		out[i] = evalAt(x, y, v, p.Kind)
	}
	return out, nil
}

// evalAt evaluates one in-range query point.
func evalAt(x, y []float64, q float64, kind Kind) float64 {
	j := sort.SearchFloat64s(x, q)
	if j == 0 {
		return y[0]
	}
	if j >= len(x) {
		return y[len(y)-1]
	}
	if x[j] == q {
		return y[j]
	}

	t := (q - x[j-1]) / (x[j] - x[j-1])
	switch kind {
	case KindNearest:
		if t < 0.5 {
			return y[j-1]
		}
		return y[j]
	case KindCubic:
		im1 := j - 2
		if im1 < 0 {
			im1 = 0
		}
		i2 := j + 1
		if i2 >= len(y) {
			i2 = len(y) - 1
		}
		return Hermite4(t, y[im1], y[j-1], y[j], y[i2])
	default:
		return y[j-1] + t*(y[j]-y[j-1])
	}
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Fallback is a reduced-capability engine supporting only [KindLinear].
//
// It ignores the bounds policy: out-of-range queries clamp to the boundary
// sample values regardless of BoundsError and Fill. A capability warning is
// logged through Logger (the process default logger when nil) on first use.
type Fallback struct {
	Logger *slog.Logger

	warnOnce sync.Once
}

// Supports reports whether kind is available on the fallback path.
func (f *Fallback) Supports(kind Kind) bool { return kind == KindLinear }

// Eval evaluates linear interpolation with boundary clamping.
func (f *Fallback) Eval(x, y, q []float64, p Policy) ([]float64, error) {
	if p.Kind != KindLinear {
		return nil, fmt.Errorf("%w: fallback engine is linear only, got %s",
			ErrKindUnsupported, p.Kind)
	}

	f.warnOnce.Do(func() {
		logger := f.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("fallback interpolation engine active: bounds and fill settings are ignored")
	})

	out := make([]float64, len(q))
	for i, v := range q {
		switch {
		case v <= x[0]:
			out[i] = y[0]
		case v >= x[len(x)-1]:
			out[i] = y[len(y)-1]
		default:
			j := sort.SearchFloat64s(x, v)
			t := (v - x[j-1]) / (x[j] - x[j-1])
			out[i] = y[j-1] + t*(y[j]-y[j-1])
		}
	}
	return out, nil
}
