// Package axis maps array indices to physical dispersion coordinates.
//
// A [Map] supplies a precomputed lookup table (one coordinate per array
// index) together with its unit tags. [Linear] describes an affine
// index-to-coordinate mapping; [Table] wraps an explicit coordinate table.
package axis
