// Package stats computes descriptive statistics over a spectrum.
//
// [Calculate] reports extrema, averages, the trapezoid integral of flux over
// dispersion and flux-weighted shape descriptors (centroid, spread).
// [EquivalentWidth] integrates a line profile against a continuum level.
// Masked samples are excluded throughout.
package stats
