package spectrum

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-spectra/interp"
)

// InterpOption configures [Spectrum.Interpolate].
type InterpOption func(*interpConfig)

type interpConfig struct {
	opts []interp.Option
}

// WithKind selects the interpolation algorithm.
func WithKind(k interp.Kind) InterpOption {
	return func(cfg *interpConfig) {
		cfg.opts = append(cfg.opts, interp.WithKind(k))
	}
}

// WithFill disables the out-of-bounds error; grid points outside the
// original dispersion range evaluate to v instead.
func WithFill(v float64) InterpOption {
	return func(cfg *interpConfig) {
		cfg.opts = append(cfg.opts, interp.WithFill(v))
	}
}

// WithEngine selects the interpolation engine.
func WithEngine(e interp.Engine) InterpOption {
	return func(cfg *interpConfig) {
		cfg.opts = append(cfg.opts, interp.WithEngine(e))
	}
}

// Interpolate resamples the spectrum onto a new dispersion grid and returns
// the resampled copy.
//
// Flux is interpolated with the configured kind (linear by default). The
// uncertainty array, when present, is resampled with the same interpolator;
// the mask is resampled nearest-neighbor. Grid points outside the original
// dispersion range fail with [interp.ErrOutOfBounds] unless [WithFill] is
// given. Metadata is deep-copied and both unit tags carry over.
func (s *Spectrum) Interpolate(dispersion []float64, opts ...InterpOption) (*Spectrum, error) {
	var cfg interpConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	ip, err := interp.New(s.dispersion, s.Flux(), cfg.opts...)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	flux, err := ip.Eval(dispersion)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	newOpts := []Option{
		WithDispersion(append([]float64(nil), dispersion...), s.dispersionUnit),
		WithUnit(s.Unit()),
		WithoutCopy(),
	}
	if meta := s.Meta(); meta != nil {
		newOpts = append(newOpts, WithMeta(meta.Clone()))
	}
	if e := s.Err(); e != nil {
		ep, err := interp.New(s.dispersion, e, cfg.opts...)
		if err != nil {
			return nil, fmt.Errorf("spectrum: resample error array: %w", err)
		}
		newErr, err := ep.Eval(dispersion)
		if err != nil {
			return nil, fmt.Errorf("spectrum: resample error array: %w", err)
		}
		newOpts = append(newOpts, WithError(newErr))
	}
	if m := s.Mask(); m != nil {
		newOpts = append(newOpts, WithMask(resampleMask(s.dispersion, m, dispersion)))
	}
	return New(flux, newOpts...)
}

// InterpolateInPlace resamples the spectrum in place.
// Not implemented; it always returns [ErrNotImplemented].
func (s *Spectrum) InterpolateInPlace(dispersion []float64, opts ...InterpOption) error {
	return ErrNotImplemented
}

// resampleMask flags each new grid point with the mask state of the nearest
// original sample.
func resampleMask(x []float64, mask []bool, q []float64) []bool {
	out := make([]bool, len(q))
	for i, v := range q {
		j := sort.SearchFloat64s(x, v)
		if j >= len(x) {
			j = len(x) - 1
		} else if j > 0 && v-x[j-1] < x[j]-v {
			j--
		}
		out[i] = mask[j]
	}
	return out
}
