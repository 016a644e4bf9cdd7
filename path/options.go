package path

import "math"

// Grid defaults used by NewBridge when no option overrides them.
const (
	// DefaultStep is the target spacing hint handed to grid.Build.
	DefaultStep = 0.001

	// DefaultMinSteps is the lower bound on the grid step count.
	DefaultMinSteps = 10
)

// GridOption customises the grid NewBridge discretises on.
type GridOption func(*gridConfig)

type gridConfig struct {
	step     float64
	minSteps int
}

// WithStep sets the spacing hint. Panics on non-finite or non-positive dt.
func WithStep(dt float64) GridOption {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		panic("path: WithStep(dt<=0)")
	}

	return func(c *gridConfig) { c.step = dt }
}

// WithMinSteps sets the minimum step count. Panics when n < 1.
func WithMinSteps(n int) GridOption {
	if n < 1 {
		panic("path: WithMinSteps(n<1)")
	}

	return func(c *gridConfig) { c.minSteps = n }
}

func newGridConfig(opts ...GridOption) gridConfig {
	cfg := gridConfig{step: DefaultStep, minSteps: DefaultMinSteps}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
