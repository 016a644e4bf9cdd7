// Package samplepath assembles a Wright-Fisher trajectory conditioned on
// allele-count observations and scores it.
//
// 🚀 What
//
//	A SamplePath is a path.Path plus, for every observation i, the index
//	sampleIndex[i] of the trajectory point at the observation's time, or −1
//	when the observation predates the allele age.
//
// ✨ Build (bridge stitching)
//
//  1. Observation frequencies count/size are clamped into [ε, 1−ε],
//     ε = exp(−10), and mapped to the latent scale by the proposer.
//  2. For each consecutive pair the population-size history supplies break
//     times [t_i, c…, t_{i+1}]; the last entry of every list is dropped and the
//     final observation time closes the list.
//  3. The break list is walked with grid.Extend, the effective step of one
//     sub-interval feeding the next as its hint.
//  4. When the running grid ends on the next observation time, a bridge is
//     proposed on it and appended, skipping the first point for every segment
//     after the first.
//  5. The observation's index is the assembled length minus one.
//
// ⚙️ Mutation and rollback
//
//	Modify overwrites an interior region. SetAlleleAge replaces the leading
//	points and re-derives every index by exact time match. Reset undoes the
//	single pending mutation (restoring the age and indices for a prefix
//	change) and Commit accepts it. A second mutation before Reset or Commit
//	discards the first undo slot.
//
// Likelihood
//
//	An indexed observation scores log Binomial(count | size, p) with
//	p = (1 − cos v)/2. An observation before the allele age scores 0 when its
//	count is 0 and −∞ otherwise.
//
// A SamplePath is not safe for concurrent use.
package samplepath
