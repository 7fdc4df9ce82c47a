package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Units selects how [Spectrum.Slice] interprets its bounds.
type Units int

const (
	// UnitsDispersion interprets bounds as coordinates on the dispersion axis.
	UnitsDispersion Units = iota
	// UnitsIndex interprets bounds as integer sample positions.
	UnitsIndex
)

// Open marks an unbounded slice endpoint.
var Open = math.NaN()

var (
	// ErrStepWithDispersion indicates a step given with coordinate units.
	ErrStepWithDispersion = errors.New("spectrum: step can only be given with index units")
	// ErrBadSliceUnits indicates an unrecognized slice units value.
	ErrBadSliceUnits = errors.New("spectrum: units must be dispersion or index")
)

// Slice returns a new spectrum restricted to a sub-range.
//
// With [UnitsDispersion], start and stop are coordinate values mapped to
// sample positions by binary search over the ascending dispersion axis, the
// selection is the half-open position interval, and step must be zero.
//
// With [UnitsIndex], start, stop and step follow extended slice semantics:
// values are truncated to integers, negative indices count from the end, a
// zero step means 1 and a negative step walks backwards.
//
// [Open] leaves an endpoint unbounded in either mode. The result carries the
// selected flux, dispersion, error and mask samples and a deep copy of the
// metadata. An empty selection yields an empty spectrum.
func (s *Spectrum) Slice(units Units, start, stop float64, step int) (*Spectrum, error) {
	var idx []int
	switch units {
	case UnitsDispersion:
		if step != 0 {
			return nil, ErrStepWithDispersion
		}
		lo := 0
		if !math.IsNaN(start) {
			lo = sort.SearchFloat64s(s.dispersion, start)
		}
		hi := len(s.dispersion)
		if !math.IsNaN(stop) {
			hi = sort.SearchFloat64s(s.dispersion, stop)
		}
		for i := lo; i < hi; i++ {
			idx = append(idx, i)
		}
	case UnitsIndex:
		idx = extendedIndices(start, stop, step, s.Len())
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadSliceUnits, units)
	}
	return s.take(idx)
}

// SliceInPlace restricts the spectrum in place.
// Not implemented; it always returns [ErrNotImplemented].
func (s *Spectrum) SliceInPlace(units Units, start, stop float64, step int) error {
	return ErrNotImplemented
}

// take gathers the given sample positions into a new spectrum.
func (s *Spectrum) take(idx []int) (*Spectrum, error) {
	flux := make([]float64, len(idx))
	dispersion := make([]float64, len(idx))
	for n, i := range idx {
		flux[n] = s.Flux()[i]
		dispersion[n] = s.dispersion[i]
	}

	opts := []Option{
		WithDispersion(dispersion, s.dispersionUnit),
		WithUnit(s.Unit()),
		WithoutCopy(),
		WithoutValidate(),
	}
	if meta := s.Meta(); meta != nil {
		opts = append(opts, WithMeta(meta.Clone()))
	}
	if e := s.Err(); e != nil {
		sub := make([]float64, len(idx))
		for n, i := range idx {
			sub[n] = e[i]
		}
		opts = append(opts, WithError(sub))
	}
	if m := s.Mask(); m != nil {
		sub := make([]bool, len(idx))
		for n, i := range idx {
			sub[n] = m[i]
		}
		opts = append(opts, WithMask(sub))
	}
	return New(flux, opts...)
}

// extendedIndices expands (start, stop, step) into explicit positions over a
// length-n array, following extended slice rules.
func extendedIndices(start, stop float64, step, n int) []int {
	if step == 0 {
		step = 1
	}

	var lo, hi int
	if step > 0 {
		lo, hi = 0, n
	} else {
		lo, hi = n-1, -1
	}
	if !math.IsNaN(start) {
		lo = clampIndex(int(start), n, step < 0)
	}
	if !math.IsNaN(stop) {
		hi = clampIndex(int(stop), n, step < 0)
	}

	var idx []int
	if step > 0 {
		for i := lo; i < hi; i += step {
			idx = append(idx, i)
		}
	} else {
		for i := lo; i > hi; i += step {
			idx = append(idx, i)
		}
	}
	return idx
}

// clampIndex normalizes a possibly-negative index into valid bounds.
// For reversed slices the valid range shifts down by one so that an
// exhausted walk can terminate before position 0.
func clampIndex(i, n int, reversed bool) int {
	if i < 0 {
		i += n
	}
	lo, hi := 0, n
	if reversed {
		lo, hi = -1, n-1
	}
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
