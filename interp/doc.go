// Package interp provides one-dimensional interpolation over sampled data.
//
// Available kinds, from cheapest to highest quality:
//
//   - [KindNearest]: snap to the nearest sample
//   - [KindLinear]:  2-point linear interpolation (default)
//   - [KindCubic]:   4-point cubic Hermite interpolation
//
// An [Interpolator] is built once from strictly increasing sample
// coordinates and evaluated on arbitrary query points. Out-of-range queries
// fail with [ErrOutOfBounds] by default; [WithFill] replaces them with a
// fill value instead.
//
// Evaluation is delegated to an [Engine] resolved at construction time. The
// default engine implements every kind and the full bounds policy;
// [Fallback] is a reduced linear-only engine that clamps to the boundary
// samples instead.
package interp
