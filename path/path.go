// SPDX-License-Identifier: MIT

package path

import (
	"fmt"

	"github.com/katalvlaran/wfpath/grid"
)

// Path is an ordered sequence of (time, value) points plus one undo slot.
// The zero value is an empty path ready for Append.
type Path struct {
	pts     []Point
	pending Mutation
}

// New pairs times with values. Both slices are copied.
//
// Errors:
//   - ErrDimensionMismatch if len(times) != len(values).
//   - ErrNotIncreasing if times is not strictly increasing.
//
// Complexity: O(n).
func New(times, values []float64) (*Path, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("New: %d times vs %d values: %w", len(times), len(values), ErrDimensionMismatch)
	}
	pts := make([]Point, len(times))
	for k := range times {
		pts[k] = Point{Time: times[k], Value: values[k]}
	}
	if err := checkIncreasing(pts); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Path{pts: pts}, nil
}

// FromPoints copies pts into a new Path. Errors with ErrNotIncreasing.
func FromPoints(pts []Point) (*Path, error) {
	if err := checkIncreasing(pts); err != nil {
		return nil, fmt.Errorf("FromPoints: %w", err)
	}

	return &Path{pts: append([]Point(nil), pts...)}, nil
}

// NewBridge builds a grid over [t0, t1] (see package grid) and asks b for a
// bridge from x0 to xt on it.
//
// Complexity: O(steps) plus the bridger.
func NewBridge(x0, xt, t0, t1 float64, b Bridger, opts ...GridOption) (*Path, error) {
	cfg := newGridConfig(opts...)
	times, err := grid.Build(t0, t1, cfg.step, cfg.minSteps)
	if err != nil {
		return nil, fmt.Errorf("NewBridge: %w", err)
	}

	return NewBridgeOnGrid(x0, xt, times, b)
}

// NewBridgeOnGrid asks b for a bridge from x0 to xt on a caller-supplied grid.
// It is used to stitch onto a neighbouring grid point for point.
//
// Errors:
//   - ErrNilPath if b is nil, ErrEmptyPath if times is empty.
//   - ErrNotIncreasing for a bad grid.
//   - ErrBridgeFailed wrapping the proposer error.
//   - ErrDimensionMismatch if the proposer returns the wrong number of values.
func NewBridgeOnGrid(x0, xt float64, times []float64, b Bridger) (*Path, error) {
	if b == nil {
		return nil, fmt.Errorf("NewBridgeOnGrid: nil bridger: %w", ErrNilPath)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("NewBridgeOnGrid: %w", ErrEmptyPath)
	}
	t0, t1 := times[0], times[len(times)-1]
	values, err := b.Bridge(x0, xt, t0, t1, times)
	if err != nil {
		return nil, fmt.Errorf("NewBridgeOnGrid(%v→%v on [%v, %v]): %w: %w", x0, xt, t0, t1, ErrBridgeFailed, err)
	}
	if len(values) != len(times) {
		return nil, fmt.Errorf("NewBridgeOnGrid: bridger returned %d values for %d times: %w",
			len(values), len(times), ErrDimensionMismatch)
	}

	return New(times, values)
}

// Len returns the number of points.
func (p *Path) Len() int { return len(p.pts) }

// At returns point k. Panics when k is out of range, like slice indexing.
func (p *Path) At(k int) Point { return p.pts[k] }

// Time returns the time of point k.
func (p *Path) Time(k int) float64 { return p.pts[k].Time }

// Value returns the value of point k.
func (p *Path) Value(k int) float64 { return p.pts[k].Value }

// Start returns the first point or ErrEmptyPath.
func (p *Path) Start() (Point, error) {
	if len(p.pts) == 0 {
		return Point{}, ErrEmptyPath
	}

	return p.pts[0], nil
}

// End returns the last point or ErrEmptyPath.
func (p *Path) End() (Point, error) {
	if len(p.pts) == 0 {
		return Point{}, ErrEmptyPath
	}

	return p.pts[len(p.pts)-1], nil
}

// Times returns a copy of the time axis.
func (p *Path) Times() []float64 {
	out := make([]float64, len(p.pts))
	for k, pt := range p.pts {
		out[k] = pt.Time
	}

	return out
}

// Values returns a copy of the trajectory values.
func (p *Path) Values() []float64 {
	out := make([]float64, len(p.pts))
	for k, pt := range p.pts {
		out[k] = pt.Value
	}

	return out
}

// Points returns a copy of the points.
func (p *Path) Points() []Point {
	return append([]Point(nil), p.pts...)
}

// Clone returns a deep copy, including the pending mutation.
// Complexity: O(Len + len(Pending().Saved)).
func (p *Path) Clone() *Path {
	c := &Path{pts: append([]Point(nil), p.pts...), pending: p.pending}
	c.pending.Saved = append([]Point(nil), p.pending.Saved...)

	return c
}

// Validate reports ErrNotIncreasing if the time axis lost strict ordering,
// e.g. after an inconsistent index-based splice.
func (p *Path) Validate() error {
	return checkIncreasing(p.pts)
}

// checkIncreasing verifies pts[k-1].Time < pts[k].Time for every k.
func checkIncreasing(pts []Point) error {
	for k := 1; k < len(pts); k++ {
		if !(pts[k-1].Time < pts[k].Time) {
			return fmt.Errorf("at index %d (%v after %v): %w", k, pts[k].Time, pts[k-1].Time, ErrNotIncreasing)
		}
	}

	return nil
}
