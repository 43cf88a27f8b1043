// Package analyzer computes per-block level and spectral statistics for
// blocks drained from a double buffer.
//
// Each block is zero-padded to the configured block size, windowed and
// transformed with a forward FFT. The analyzer reports the block RMS level
// and the strongest non-DC bin.
package analyzer
