// Package path models one continuous sample path of a scalar diffusion: an
// ordered sequence of (time, value) points with strictly increasing times.
//
// 🚀 What does it do?
//
//	A Path is the unit of work of a path-space sampler. It is built either by
//	asking a Bridger for a diffusion bridge between two fixed end values, or by
//	composing existing paths (Subpath, Append, Insert). A sampler then proposes
//	local changes (Modify, ReplacePrefix) and either keeps them (Commit) or
//	rolls them back (Reset).
//
// ✨ Key features:
//   - times and values are stored as ONE []Point, so they can never drift apart
//   - exactly one pending mutation can be undone (single-slot rollback)
//   - index-based splicing (Append, AppendFrom, Insert, Modify, ReplacePrefix)
//   - half-open Subpath vs closed TimeSlice/ValueSlice (kept deliberately distinct)
//   - Flip for the angular reflection v → π − v
//   - JSON dump/restore
//
// ⚙️ Usage:
//
//	p, err := path.NewBridge(x0, xt, 0, 1, proposer, path.WithStep(0.01))
//	if err != nil {
//	  // ErrBridgeFailed wraps the proposer's own error
//	}
//	_ = p.Modify(local, 40) // overwrite [40, 40+local.Len())
//	p.Reset()               // …or p.Commit()
//
// Rollback contract:
//
//	A second Modify/ReplacePrefix before Reset or Commit replaces the pending
//	slot, so the first change can no longer be undone. Callers that interleave
//	proposals must serialise them.
//
// Splicing is index based: Insert and Modify do not re-check time ordering.
// Use Validate after hand-made splices.
package path
