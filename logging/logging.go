// Package logging builds the structured logger used by the wfpath binary.
//
// Library packages never pick a sink: they accept an optional *slog.Logger
// and default to Discard. Only cmd/wfpath calls New.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	// ErrInvalidLevel indicates an unknown level name.
	ErrInvalidLevel = errors.New("logging: invalid level")

	// ErrInvalidFormat indicates a format other than text, json or auto.
	ErrInvalidFormat = errors.New("logging: invalid format")
)

// Output and format names accepted by New.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	FormatText   = "text"
	FormatJSON   = "json"
	FormatAuto   = "auto"
)

// Config selects level, handler format and destination. Output is stderr,
// stdout or a file path (appended to).
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Logger is a *slog.Logger that may own its output file.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// Close releases the output file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

// New returns a logger for cfg. Empty fields mean info, text, stderr.
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer
		closer io.Closer
	)
	switch cfg.Output {
	case "", OutputStderr:
		w = os.Stderr
	case OutputStdout:
		w = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open %s: %w", cfg.Output, err)
		}
		w, closer = f, f
	}

	format := cfg.Format
	if strings.EqualFold(format, FormatAuto) {
		format = ResolveFormat(w)
	}

	h, err := NewHandler(w, format, level)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	return &Logger{Logger: slog.New(h), closer: closer}, nil
}

// NewHandler returns a text or JSON handler writing to w.
func NewHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", FormatText:
		return slog.NewTextHandler(w, opts), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// ResolveFormat picks text for a terminal and json for anything else.
func ResolveFormat(w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok {
		return FormatJSON
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}

	return FormatJSON
}

// ParseLevel maps debug, info, warn/warning and error to slog levels.
// The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
