// Package fourier builds frequency-domain spectra from time-domain signals.
//
// [Magnitude] windows a signal, transforms it with an FFT and returns the
// one-sided magnitude spectrum as a [spectrum.Spectrum] whose dispersion
// axis carries the bin frequencies in Hz.
package fourier
