// Package grid builds the discretised time axes that diffusion bridges are
// simulated on.
//
// 🚀 What is a time grid?
//
//	A strictly increasing sequence of time points t0 < t1 < … < tn with
//	near-uniform spacing and EXACT endpoints. Exactness matters: adjacent
//	bridge segments are glued on a shared boundary point and observations are
//	located on the axis by equality, never by interpolation.
//
// ✨ Key features:
//   - Build: one fresh grid for [t0, t1]
//   - Extend: append a segment onto an existing grid (no duplicated joint)
//   - the effective step is returned so a caller can re-use it as the next hint
//
// ⚙️ Usage:
//
//	times, err := grid.Build(0, 1, 0.01, 10)
//	if err != nil {
//	  // handle ErrBadInterval / ErrBadStep / ErrBadMinSteps
//	}
//
// Step count policy:
//
//	steps = max(minSteps, ceil((t1-t0)/dt)+1) + 1
//	dt'   = (t1-t0)/(steps-1)
//
// Complexity: O(steps) time and memory.
package grid
