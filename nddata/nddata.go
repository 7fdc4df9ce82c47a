package nddata

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyData indicates construction without any data samples.
	ErrEmptyData = errors.New("nddata: data must not be empty")
	// ErrLengthMismatch indicates an optional array whose length differs from data.
	ErrLengthMismatch = errors.New("nddata: length mismatch")
)

// Array is a one-dimensional data array with an optional per-sample
// uncertainty array, an optional quality mask, a unit tag and metadata.
//
// The optional arrays are aligned element-for-element with the data.
// A mask value of true marks a bad sample.
type Array struct {
	data []float64
	err  []float64
	mask []bool
	unit string
	meta Meta
}

type config struct {
	err        []float64
	mask       []bool
	unit       string
	meta       Meta
	noCopy     bool
	noValidate bool
}

// Option configures Array construction.
type Option func(*config)

// WithError attaches a per-sample uncertainty array.
func WithError(err []float64) Option {
	return func(cfg *config) {
		cfg.err = err
	}
}

// WithMask attaches a per-sample quality mask (true = bad sample).
func WithMask(mask []bool) Option {
	return func(cfg *config) {
		cfg.mask = mask
	}
}

// WithUnit sets the unit tag of the data values.
func WithUnit(unit string) Option {
	return func(cfg *config) {
		cfg.unit = unit
	}
}

// WithMeta attaches metadata.
func WithMeta(meta Meta) Option {
	return func(cfg *config) {
		cfg.meta = meta
	}
}

// WithoutCopy stores the given slices and metadata directly instead of
// copying them. The caller must not mutate them afterwards.
func WithoutCopy() Option {
	return func(cfg *config) {
		cfg.noCopy = true
	}
}

// WithoutValidate skips length validation. Inputs are stored as given.
func WithoutValidate() Option {
	return func(cfg *config) {
		cfg.noValidate = true
	}
}

// New creates an Array from data samples and options.
//
// By default inputs are deep-copied and validated: data must be non-empty and
// the error and mask arrays, when present, must match its length.
func New(data []float64, opts ...Option) (*Array, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.noValidate {
		if len(data) == 0 {
			return nil, ErrEmptyData
		}
		if cfg.err != nil && len(cfg.err) != len(data) {
			return nil, fmt.Errorf("%w: error has %d samples, data has %d",
				ErrLengthMismatch, len(cfg.err), len(data))
		}
		if cfg.mask != nil && len(cfg.mask) != len(data) {
			return nil, fmt.Errorf("%w: mask has %d samples, data has %d",
				ErrLengthMismatch, len(cfg.mask), len(data))
		}
	}

	a := &Array{unit: cfg.unit}
	if cfg.noCopy {
		a.data = data
		a.err = cfg.err
		a.mask = cfg.mask
		a.meta = cfg.meta
		return a, nil
	}

	a.data = append([]float64(nil), data...)
	if cfg.err != nil {
		a.err = append([]float64(nil), cfg.err...)
	}
	if cfg.mask != nil {
		a.mask = append([]bool(nil), cfg.mask...)
	}
	if cfg.meta != nil {
		a.meta = cfg.meta.Clone()
	}
	return a, nil
}

// Len returns the number of data samples.
func (a *Array) Len() int { return len(a.data) }

// Data returns the data samples. The returned slice is a view, not a copy.
func (a *Array) Data() []float64 { return a.data }

// Err returns the uncertainty array, or nil when absent. View semantics.
func (a *Array) Err() []float64 { return a.err }

// Mask returns the quality mask, or nil when absent. View semantics.
func (a *Array) Mask() []bool { return a.mask }

// Unit returns the unit tag of the data values.
func (a *Array) Unit() string { return a.unit }

// Meta returns the metadata mapping, or nil when absent. View semantics.
func (a *Array) Meta() Meta { return a.meta }

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	out := &Array{
		data: append([]float64(nil), a.data...),
		unit: a.unit,
	}
	if a.err != nil {
		out.err = append([]float64(nil), a.err...)
	}
	if a.mask != nil {
		out.mask = append([]bool(nil), a.mask...)
	}
	if a.meta != nil {
		out.meta = a.meta.Clone()
	}
	return out
}
