package stats

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-spectra/spectrum"
)

var (
	// ErrEmpty indicates a spectrum with no unmasked samples.
	ErrEmpty = errors.New("stats: no unmasked samples")
	// ErrBadContinuum indicates a non-positive continuum level.
	ErrBadContinuum = errors.New("stats: continuum must be > 0")
)

// Stats holds descriptive statistics of a spectrum.
type Stats struct {
	Samples int // unmasked samples used

	Min   float64
	MinAt float64 // dispersion coordinate of the minimum
	Max   float64
	MaxAt float64 // dispersion coordinate of the maximum
	Sum   float64
	Mean  float64

	Integral float64 // trapezoid integral of flux over dispersion
	Centroid float64 // flux-weighted mean dispersion
	Spread   float64 // flux-weighted standard deviation around the centroid
}

// Calculate computes descriptive statistics over the unmasked samples.
//
// The integral, centroid and spread are evaluated on the unmasked
// subsequence of the dispersion axis; the centroid and spread use the
// absolute flux as weights.
func Calculate(s *spectrum.Spectrum) (Stats, error) {
	flux := s.Flux()
	dispersion := s.Dispersion()
	mask := s.Mask()

	var (
		st         Stats
		weightSum  float64
		weightedX  float64
		weightedX2 float64
		prevIdx    = -1
	)
	st.Min = math.Inf(1)
	st.Max = math.Inf(-1)

	for i := range flux {
		if mask != nil && mask[i] {
			continue
		}

		f := flux[i]
		x := dispersion[i]
		if f < st.Min {
			st.Min, st.MinAt = f, x
		}
		if f > st.Max {
			st.Max, st.MaxAt = f, x
		}
		st.Sum += f

		w := math.Abs(f)
		weightSum += w
		weightedX += w * x
		weightedX2 += w * x * x

		if prevIdx >= 0 {
			dx := x - dispersion[prevIdx]
			st.Integral += 0.5 * (f + flux[prevIdx]) * dx
		}
		prevIdx = i
		st.Samples++
	}

	if st.Samples == 0 {
		return Stats{}, ErrEmpty
	}

	st.Mean = st.Sum / float64(st.Samples)
	if weightSum > 0 {
		st.Centroid = weightedX / weightSum
		variance := weightedX2/weightSum - st.Centroid*st.Centroid
		if variance > 0 {
			st.Spread = math.Sqrt(variance)
		}
	}
	return st, nil
}

// EquivalentWidth integrates (1 - flux/continuum) over the unmasked
// dispersion range. Positive values indicate absorption against the
// continuum, negative values emission.
func EquivalentWidth(s *spectrum.Spectrum, continuum float64) (float64, error) {
	if continuum <= 0 {
		return 0, ErrBadContinuum
	}

	flux := s.Flux()
	dispersion := s.Dispersion()
	mask := s.Mask()

	width := 0.0
	prevIdx := -1
	samples := 0
	for i := range flux {
		if mask != nil && mask[i] {
			continue
		}
		if prevIdx >= 0 {
			dx := dispersion[i] - dispersion[prevIdx]
			depthPrev := 1 - flux[prevIdx]/continuum
			depth := 1 - flux[i]/continuum
			width += 0.5 * (depthPrev + depth) * dx
		}
		prevIdx = i
		samples++
	}
	if samples == 0 {
		return 0, ErrEmpty
	}
	return width, nil
}
