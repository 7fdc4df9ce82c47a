// Package spectrum implements a one-dimensional spectrum container.
//
// A [Spectrum] pairs a flux array with a dispersion (wavelength or
// frequency) axis and carries the optional uncertainty, mask, unit and
// metadata of its underlying [nddata.Array]. Instances are immutable by
// convention: every operation returns a new spectrum.
//
// Operations:
//
//   - [Spectrum.Slice]:       restrict to a coordinate or index sub-range
//   - [Spectrum.Interpolate]: resample onto a new dispersion grid
//   - [Spectrum.Add] / Sub / Mul / Div: elementwise arithmetic against
//     another spectrum or a numeric scalar, with metadata merging and
//     uncertainty propagation
//
// The dispersion axis is assumed sorted ascending; coordinate-based slicing
// relies on it. The precondition is not checked.
package spectrum
