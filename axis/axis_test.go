package axis

import (
	"math"
	"testing"
)

func TestLinearLookupTable(t *testing.T) {
	m := Linear{Start: 100, Step: 10, N: 4, Unit: "nm"}

	table := m.LookupTable()
	want := []float64{100, 110, 120, 130}
	if len(table) != len(want) {
		t.Fatalf("lookup table length mismatch: %v", table)
	}
	for i := range want {
		if math.Abs(table[i]-want[i]) > 1e-12 {
			t.Fatalf("table[%d]=%f want=%f", i, table[i], want[i])
		}
	}

	if units := m.Units(); len(units) != 1 || units[0] != "nm" {
		t.Fatalf("unexpected units: %v", units)
	}
}

func TestLinearRoundTrip(t *testing.T) {
	m := Linear{Start: 4000, Step: 0.5, N: 100, Unit: "Angstrom"}

	for _, i := range []int{0, 1, 42, 99} {
		if got := m.IndexOf(m.CoordOf(i)); got != i {
			t.Fatalf("round trip failed for index %d: got %d", i, got)
		}
	}

	if got := m.IndexOf(-1e9); got != 0 {
		t.Fatalf("IndexOf must clamp below: %d", got)
	}
	if got := m.IndexOf(1e9); got != 99 {
		t.Fatalf("IndexOf must clamp above: %d", got)
	}
}

func TestLinearEmpty(t *testing.T) {
	m := Linear{Start: 0, Step: 1, N: 0}
	if m.LookupTable() != nil {
		t.Fatalf("empty map must produce nil table")
	}
}

func TestTable(t *testing.T) {
	m := Table{Values: []float64{1, 2, 4, 8}, Unit: "GHz"}

	if got := m.LookupTable(); len(got) != 4 || got[2] != 4 {
		t.Fatalf("unexpected table: %v", got)
	}
	if units := m.Units(); units[0] != "GHz" {
		t.Fatalf("unexpected units: %v", units)
	}
}
