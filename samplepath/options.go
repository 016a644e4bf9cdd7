package samplepath

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/wfpath/path"
)

// Build defaults.
const (
	DefaultStep     = path.DefaultStep
	DefaultMinSteps = path.DefaultMinSteps
)

// Recorder receives counts of stitching and mutation events.
// metrics.Recorder implements it with prometheus counters.
type Recorder interface {
	BridgeProposed()
	BridgeFailed()
	Mutation(kind path.MutationKind)
	Rollback(kind path.MutationKind)
	Commit()
}

type nopRecorder struct{}

func (nopRecorder) BridgeProposed()            {}
func (nopRecorder) BridgeFailed()              {}
func (nopRecorder) Mutation(path.MutationKind) {}
func (nopRecorder) Rollback(path.MutationKind) {}
func (nopRecorder) Commit()                    {}

// Option customises Build and Restore.
type Option func(*config)

type config struct {
	step     float64
	minSteps int
	rec      Recorder
	logger   *slog.Logger
}

// WithStep sets the grid spacing hint. Panics unless dt > 0.
func WithStep(dt float64) Option {
	path.WithStep(dt) // validates

	return func(c *config) { c.step = dt }
}

// WithMinSteps sets the per-interval minimum step count. Panics when n < 1.
func WithMinSteps(n int) Option {
	path.WithMinSteps(n)

	return func(c *config) { c.minSteps = n }
}

// WithRecorder attaches an event recorder. Panics on nil.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("samplepath: WithRecorder(nil)")
	}

	return func(c *config) { c.rec = r }
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("samplepath: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

func newConfig(opts ...Option) config {
	cfg := config{
		step:     DefaultStep,
		minSteps: DefaultMinSteps,
		rec:      nopRecorder{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
