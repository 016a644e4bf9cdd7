// Package popsize models a piecewise-constant population-size history.
//
// A History is a list of epochs {Start, Size}; the size in force at time t is
// the size of the last epoch whose Start ≤ t (the first epoch's size applies
// before any start). Sizes are relative to the reference size N0, so the
// Constant history has a single epoch of size 1.
//
// BreakTimes(t0, t1) returns the bounded interval followed by every epoch
// change strictly inside it:
//
//	[t0, c1, c2, …, t1]
//
// Callers that chain several intervals drop the last entry of each list and
// close with the final bound, so shared ends appear once.
//
// Files hold one epoch per line, "startTime size", with blank lines and
// '#' comments ignored.
package popsize
