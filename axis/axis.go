package axis

import "math"

// Map translates array indices to physical dispersion coordinates.
type Map interface {
	// LookupTable returns the coordinate of every array index, in order.
	LookupTable() []float64
	// Units returns the unit tags of the mapped axes.
	// The first entry applies to the lookup table.
	Units() []string
}

// Linear maps index i to Start + i*Step over N samples.
type Linear struct {
	Start float64
	Step  float64
	N     int
	Unit  string
}

// LookupTable returns the N mapped coordinates.
func (m Linear) LookupTable() []float64 {
	if m.N <= 0 {
		return nil
	}
	out := make([]float64, m.N)
	for i := range out {
		out[i] = m.Start + float64(i)*m.Step
	}
	return out
}

// Units returns the coordinate unit tag.
func (m Linear) Units() []string { return []string{m.Unit} }

// CoordOf returns the coordinate of index i.
func (m Linear) CoordOf(i int) float64 { return m.Start + float64(i)*m.Step }

// IndexOf returns the index nearest to coordinate c, clamped to [0, N-1].
func (m Linear) IndexOf(c float64) int {
	if m.N <= 0 || m.Step == 0 {
		return 0
	}
	i := int(math.Round((c - m.Start) / m.Step))
	if i < 0 {
		return 0
	}
	if i >= m.N {
		return m.N - 1
	}
	return i
}

// Table wraps an explicit coordinate lookup table.
type Table struct {
	Values []float64
	Unit   string
}

// LookupTable returns the wrapped coordinate table.
func (m Table) LookupTable() []float64 { return m.Values }

// Units returns the coordinate unit tag.
func (m Table) Units() []string { return []string{m.Unit} }
