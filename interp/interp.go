package interp

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewSamples indicates fewer than 2 sample points.
	ErrTooFewSamples = errors.New("interp: need at least 2 samples")
	// ErrLengthMismatch indicates x and y of different lengths.
	ErrLengthMismatch = errors.New("interp: x/y length mismatch")
	// ErrNotIncreasing indicates sample coordinates that are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: x must be strictly increasing")
	// ErrOutOfBounds indicates a query outside the sampled coordinate range.
	ErrOutOfBounds = errors.New("interp: query out of bounds")
	// ErrKindUnsupported indicates a kind the selected engine does not implement.
	ErrKindUnsupported = errors.New("interp: kind not supported by engine")
)

// Kind selects the interpolation algorithm.
type Kind int

const (
	// KindLinear is 2-point linear interpolation.
	KindLinear Kind = iota
	// KindNearest snaps to the nearest sample value.
	KindNearest
	// KindCubic is 4-point cubic Hermite interpolation.
	// Neighbor samples are treated as uniformly spaced within each segment.
	KindCubic
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindNearest:
		return "nearest"
	case KindCubic:
		return "cubic"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Policy holds the evaluation settings passed to an [Engine].
type Policy struct {
	Kind Kind
	// BoundsError selects whether out-of-range queries fail or evaluate to Fill.
	BoundsError bool
	Fill        float64
}

type config struct {
	policy Policy
	engine Engine
}

func defaultConfig() config {
	return config{
		policy: Policy{Kind: KindLinear, BoundsError: true, Fill: math.NaN()},
		engine: native{},
	}
}

// Option configures an Interpolator.
type Option func(*config)

// WithKind selects the interpolation algorithm.
func WithKind(k Kind) Option {
	return func(cfg *config) {
		cfg.policy.Kind = k
	}
}

// WithFill disables the out-of-bounds error; out-of-range queries evaluate
// to v instead.
func WithFill(v float64) Option {
	return func(cfg *config) {
		cfg.policy.BoundsError = false
		cfg.policy.Fill = v
	}
}

// WithEngine selects the evaluation engine.
func WithEngine(e Engine) Option {
	return func(cfg *config) {
		if e != nil {
			cfg.engine = e
		}
	}
}

// Interpolator evaluates a sampled function on arbitrary query points.
type Interpolator struct {
	x, y []float64
	cfg  config
}

// New builds an interpolator over the samples (x, y).
//
// x must be strictly increasing, match the length of y and hold at least 2
// samples. The requested kind must be supported by the selected engine.
func New(x, y []float64, opts ...Option) (*Interpolator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewSamples, len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("%w at index %d", ErrNotIncreasing, i)
		}
	}
	if !cfg.engine.Supports(cfg.policy.Kind) {
		return nil, fmt.Errorf("%w: %s", ErrKindUnsupported, cfg.policy.Kind)
	}

	return &Interpolator{x: x, y: y, cfg: cfg}, nil
}

// Kind returns the configured algorithm.
func (p *Interpolator) Kind() Kind { return p.cfg.policy.Kind }

// Eval evaluates the interpolant at every query point.
func (p *Interpolator) Eval(q []float64) ([]float64, error) {
	return p.cfg.engine.Eval(p.x, p.y, q, p.cfg.policy)
}

// At evaluates the interpolant at a single query point.
func (p *Interpolator) At(q float64) (float64, error) {
	out, err := p.Eval([]float64{q})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
