package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectra/axis"
	"github.com/cwbudde/algo-spectra/nddata"
)

var (
	// ErrNoDispersion indicates construction without a dispersion axis.
	ErrNoDispersion = errors.New("spectrum: dispersion axis required")
	// ErrLengthMismatch indicates dispersion and flux arrays of different lengths.
	ErrLengthMismatch = errors.New("spectrum: dispersion/flux length mismatch")
	// ErrNotImplemented indicates a request for an unimplemented in-place mode.
	ErrNotImplemented = errors.New("spectrum: in-place operation not implemented")
)

// Spectrum is a one-dimensional spectrum: flux samples paired with a
// dispersion axis, extending the base [nddata.Array] container.
type Spectrum struct {
	*nddata.Array

	dispersion     []float64
	dispersionUnit string
}

type config struct {
	dispersion     []float64
	dispersionUnit string
	axisMap        axis.Map
	arrOpts        []nddata.Option
	noCopy         bool
	noValidate     bool
}

// Option configures Spectrum construction.
type Option func(*config)

// WithDispersion sets the dispersion axis samples and their unit tag.
func WithDispersion(dispersion []float64, unit string) Option {
	return func(cfg *config) {
		cfg.dispersion = dispersion
		cfg.dispersionUnit = unit
	}
}

// WithAxisMap derives the dispersion axis from a coordinate map.
// A map takes precedence over [WithDispersion]: the lookup table supplies
// the axis samples and its first unit entry supplies the unit tag.
func WithAxisMap(m axis.Map) Option {
	return func(cfg *config) {
		cfg.axisMap = m
	}
}

// WithError attaches a per-sample uncertainty array.
func WithError(err []float64) Option {
	return func(cfg *config) {
		cfg.arrOpts = append(cfg.arrOpts, nddata.WithError(err))
	}
}

// WithMask attaches a per-sample quality mask (true = bad sample).
func WithMask(mask []bool) Option {
	return func(cfg *config) {
		cfg.arrOpts = append(cfg.arrOpts, nddata.WithMask(mask))
	}
}

// WithUnit sets the unit tag of the flux values.
func WithUnit(unit string) Option {
	return func(cfg *config) {
		cfg.arrOpts = append(cfg.arrOpts, nddata.WithUnit(unit))
	}
}

// WithMeta attaches metadata.
func WithMeta(meta nddata.Meta) Option {
	return func(cfg *config) {
		cfg.arrOpts = append(cfg.arrOpts, nddata.WithMeta(meta))
	}
}

// WithoutCopy stores the given slices and metadata directly instead of
// copying them. The caller must not mutate them afterwards.
func WithoutCopy() Option {
	return func(cfg *config) {
		cfg.noCopy = true
		cfg.arrOpts = append(cfg.arrOpts, nddata.WithoutCopy())
	}
}

// WithoutValidate skips dispersion and container validation.
func WithoutValidate() Option {
	return func(cfg *config) {
		cfg.noValidate = true
		cfg.arrOpts = append(cfg.arrOpts, nddata.WithoutValidate())
	}
}

// New constructs a spectrum from flux samples.
//
// The dispersion axis comes from [WithDispersion] or, with precedence, from
// a [WithAxisMap] coordinate map. Validation requires the axis to be present
// and to match the flux length; the container applies its own checks on the
// optional arrays.
func New(flux []float64, opts ...Option) (*Spectrum, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	dispersion := cfg.dispersion
	dispersionUnit := cfg.dispersionUnit
	if cfg.axisMap != nil {
		dispersion = cfg.axisMap.LookupTable()
		dispersionUnit = ""
		if units := cfg.axisMap.Units(); len(units) > 0 {
			dispersionUnit = units[0]
		}
	}

	if !cfg.noValidate {
		if dispersion == nil {
			return nil, ErrNoDispersion
		}
		if len(dispersion) != len(flux) {
			return nil, fmt.Errorf("%w: %d != %d",
				ErrLengthMismatch, len(dispersion), len(flux))
		}
	}

	arr, err := nddata.New(flux, cfg.arrOpts...)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	s := &Spectrum{Array: arr, dispersionUnit: dispersionUnit}
	if cfg.noCopy {
		s.dispersion = dispersion
	} else if dispersion != nil {
		s.dispersion = append([]float64(nil), dispersion...)
	}
	return s, nil
}

// Flux returns the flux samples. The returned slice is a view, not a copy.
func (s *Spectrum) Flux() []float64 { return s.Data() }

// Dispersion returns the dispersion axis samples. View semantics.
func (s *Spectrum) Dispersion() []float64 { return s.dispersion }

// DispersionUnit returns the unit tag of the dispersion axis.
func (s *Spectrum) DispersionUnit() string { return s.dispersionUnit }

// Clone returns a deep copy of the spectrum.
func (s *Spectrum) Clone() *Spectrum {
	return &Spectrum{
		Array:          s.Array.Clone(),
		dispersion:     append([]float64(nil), s.dispersion...),
		dispersionUnit: s.dispersionUnit,
	}
}
