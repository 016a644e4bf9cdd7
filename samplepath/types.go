package samplepath

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/wfpath/path"
	"github.com/katalvlaran/wfpath/sample"
)

// Epsilon keeps initial frequencies away from exactly 0 and 1.
var Epsilon = math.Exp(-10)

// BreakTimer supplies the times at which the population size changes.
// BreakTimes(t0, t1) must return [t0, c…, t1], strictly increasing.
// *popsize.History implements it.
type BreakTimer interface {
	BreakTimes(t0, t1 float64) ([]float64, error)
}

// SamplePath is a trajectory tied to a list of observations.
type SamplePath struct {
	p            *path.Path
	obs          []sample.Observation
	index        []int
	age          float64
	firstNonzero int

	// restored by Reset after a prefix replacement
	oldAge float64

	rec    Recorder
	logger *slog.Logger
}
