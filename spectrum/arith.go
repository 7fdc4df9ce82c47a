package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/nddata"
)

// ErrOperandMismatch indicates spectrum operands whose dispersion axes or
// flux units differ.
var ErrOperandMismatch = errors.New("spectrum: dispersion and units must match for both operands")

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

// operand holds the coerced right-hand side of an arithmetic operation.
type operand struct {
	flux     []float64
	err      []float64
	mask     []bool
	meta     nddata.Meta
	scalar   float64
	isScalar bool
}

// coerce validates and extracts the operand of a binary operation.
//
// Another *Spectrum must share this spectrum's dispersion values and flux
// unit. A plain Go numeric becomes a constant flux contribution with empty
// metadata. Anything else is rejected with an error naming both types.
func (s *Spectrum) coerce(v any) (operand, error) {
	switch t := v.(type) {
	case *Spectrum:
		if !equalFloat64s(s.dispersion, t.dispersion) || s.Unit() != t.Unit() {
			return operand{}, ErrOperandMismatch
		}
		return operand{flux: t.Flux(), err: t.Err(), mask: t.Mask(), meta: t.Meta()}, nil
	case float64:
		return operand{scalar: t, isScalar: true}, nil
	case float32:
		return operand{scalar: float64(t), isScalar: true}, nil
	case int:
		return operand{scalar: float64(t), isScalar: true}, nil
	case int8:
		return operand{scalar: float64(t), isScalar: true}, nil
	case int16:
		return operand{scalar: float64(t), isScalar: true}, nil
	case int32:
		return operand{scalar: float64(t), isScalar: true}, nil
	case int64:
		return operand{scalar: float64(t), isScalar: true}, nil
	case uint:
		return operand{scalar: float64(t), isScalar: true}, nil
	case uint8:
		return operand{scalar: float64(t), isScalar: true}, nil
	case uint16:
		return operand{scalar: float64(t), isScalar: true}, nil
	case uint32:
		return operand{scalar: float64(t), isScalar: true}, nil
	case uint64:
		return operand{scalar: float64(t), isScalar: true}, nil
	default:
		return operand{}, fmt.Errorf("spectrum: unsupported operand types for arithmetic: %T and %T", s, v)
	}
}

// Add returns s + v elementwise.
//
// v may be another *Spectrum with a value-equal dispersion axis and equal
// flux unit, or a plain Go numeric scalar. Metadata is merged with
// [nddata.MergeMeta]; uncertainties combine in quadrature and masks are
// OR-combined. The result owns independent copies of all arrays.
func (s *Spectrum) Add(v any) (*Spectrum, error) { return s.combine(v, opAdd) }

// Sub returns s - v elementwise. Operand and propagation rules match [Spectrum.Add].
func (s *Spectrum) Sub(v any) (*Spectrum, error) { return s.combine(v, opSub) }

// Mul returns s * v elementwise. Relative uncertainties combine in quadrature.
func (s *Spectrum) Mul(v any) (*Spectrum, error) { return s.combine(v, opMul) }

// Div returns s / v elementwise, following IEEE-754 for zero divisors.
// Relative uncertainties combine in quadrature.
func (s *Spectrum) Div(v any) (*Spectrum, error) { return s.combine(v, opDiv) }

func (s *Spectrum) combine(v any, op binOp) (*Spectrum, error) {
	rhs, err := s.coerce(v)
	if err != nil {
		return nil, err
	}

	a := s.Flux()
	flux := make([]float64, len(a))
	if rhs.isScalar {
		switch op {
		case opAdd:
			for i := range flux {
				flux[i] = a[i] + rhs.scalar
			}
		case opSub:
			for i := range flux {
				flux[i] = a[i] - rhs.scalar
			}
		case opMul:
			vecmath.ScaleBlock(flux, a, rhs.scalar)
		case opDiv:
			for i := range flux {
				flux[i] = a[i] / rhs.scalar
			}
		}
	} else {
		b := rhs.flux
		switch op {
		case opAdd:
			vecmath.AddBlock(flux, a, b)
		case opSub:
			for i := range flux {
				flux[i] = a[i] - b[i]
			}
		case opMul:
			vecmath.MulBlock(flux, a, b)
		case opDiv:
			for i := range flux {
				flux[i] = a[i] / b[i]
			}
		}
	}

	opts := []Option{
		WithDispersion(append([]float64(nil), s.dispersion...), s.dispersionUnit),
		WithUnit(s.Unit()),
		WithMeta(nddata.MergeMeta(s.Meta(), rhs.meta)),
		WithoutCopy(),
	}
	if e := propagateError(op, a, s.Err(), rhs, flux); e != nil {
		opts = append(opts, WithError(e))
	}
	if m := combineMask(s.Mask(), rhs.mask); m != nil {
		opts = append(opts, WithMask(m))
	}
	return New(flux, opts...)
}

// propagateError combines uncertainties onto the result grid.
// Add/Sub use quadrature; Mul/Div use relative quadrature. A scalar operand
// leaves the uncertainty untouched for Add/Sub and scales it for Mul/Div.
func propagateError(op binOp, a, aErr []float64, rhs operand, flux []float64) []float64 {
	if aErr == nil && rhs.err == nil {
		return nil
	}

	out := make([]float64, len(a))
	switch op {
	case opAdd, opSub:
		for i := range out {
			var ea, eb float64
			if aErr != nil {
				ea = aErr[i]
			}
			if rhs.err != nil {
				eb = rhs.err[i]
			}
			out[i] = math.Hypot(ea, eb)
		}
	case opMul, opDiv:
		if rhs.isScalar {
			k := math.Abs(rhs.scalar)
			if op == opDiv {
				k = 1 / k
			}
			vecmath.ScaleBlock(out, aErr, k)
			return out
		}
		for i := range out {
			var ra, rb float64
			if aErr != nil && a[i] != 0 {
				ra = aErr[i] / a[i]
			}
			if rhs.err != nil && rhs.flux[i] != 0 {
				rb = rhs.err[i] / rhs.flux[i]
			}
			out[i] = math.Abs(flux[i]) * math.Hypot(ra, rb)
		}
	}
	return out
}

// combineMask ORs two quality masks, passing a lone mask through.
func combineMask(a, b []bool) []bool {
	if a == nil && b == nil {
		return nil
	}
	n := len(a)
	if n == 0 {
		n = len(b)
	}
	out := make([]bool, n)
	for i := range out {
		if a != nil && a[i] {
			out[i] = true
		}
		if b != nil && b[i] {
			out[i] = true
		}
	}
	return out
}

// equalFloat64s reports elementwise equality of two float slices.
func equalFloat64s(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
