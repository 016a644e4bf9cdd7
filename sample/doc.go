// Package sample reads allele-count observations.
//
// Input is one record per line, whitespace separated:
//
//	count  sampleSize  lowTime  highTime
//
// Blank lines and lines starting with '#' are skipped. A record is rejected
// when count ∉ [0, sampleSize] or lowTime > highTime; the error names the
// offending line.
//
// Times are converted from raw units (years, generations) into diffusion
// units by dividing by Scale.Factor() = GenerationTime·2·N0. The defaults
// (1, 0.5) leave times unchanged.
//
// When lowTime < highTime the observation time is taken as the midpoint and
// a warning is logged: full sample-time uncertainty is not modelled.
//
// Parse returns observations stably sorted by converted time.
package sample
