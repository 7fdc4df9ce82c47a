// Package nddata provides the base array-with-metadata container that
// spectrum types layer a dispersion axis on top of.
//
// An [Array] bundles a one-dimensional data array with an optional
// per-sample uncertainty array, an optional quality mask, a unit tag and
// free-form [Meta] metadata. Construction deep-copies and validates its
// inputs by default; both behaviors can be switched off for callers that
// manage their own buffers.
//
// [MergeMeta] combines two metadata mappings, dropping keys present in both
// and reporting them through the package logger.
package nddata
