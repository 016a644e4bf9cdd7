package sample

import (
	"io"
	"log/slog"
)

// Option customises Parse.
type Option func(*parseConfig)

type parseConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for midpoint warnings. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sample: WithLogger(nil)")
	}

	return func(c *parseConfig) { c.logger = l }
}

func newParseConfig(opts ...Option) parseConfig {
	cfg := parseConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
