package sample

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Parse reads observation records from r.
//
// Errors:
//   - ErrInvalidScale if scale is unusable.
//   - ErrInvalidRecord wrapping ErrMalformed, ErrCountRange or ErrTimeRange.
//   - ErrNoObservations if r holds no records.
func Parse(r io.Reader, scale Scale, opts ...Option) ([]Observation, error) {
	if err := scale.Validate(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	cfg := newParseConfig(opts...)
	factor := scale.Factor()

	var obs []Observation
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		o, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("Parse: line %d: %w: %w", line, ErrInvalidRecord, err)
		}
		if o.Uncertain() {
			cfg.logger.Warn("sample time uncertainty not modelled, using midpoint",
				slog.Int("line", line),
				slog.Float64("low", o.LowRaw),
				slog.Float64("high", o.HighRaw))
		}
		o.Time = (o.LowRaw + o.HighRaw) / 2 / factor
		obs = append(obs, o)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}
	SortByTime(obs)

	return obs, nil
}

// ParseFile opens name and calls Parse.
func ParseFile(name string, scale Scale, opts ...Option) ([]Observation, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("ParseFile: %w", err)
	}
	defer f.Close()

	return Parse(f, scale, opts...)
}

// SortByTime sorts obs by Time in place, keeping input order among ties.
func SortByTime(obs []Observation) {
	sort.SliceStable(obs, func(i, j int) bool { return obs[i].Time < obs[j].Time })
}

func parseRecord(text string) (Observation, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return Observation{}, fmt.Errorf("want 4 fields, got %d: %w", len(fields), ErrMalformed)
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return Observation{}, fmt.Errorf("count %q: %w", fields[0], ErrMalformed)
	}
	size, err := strconv.Atoi(fields[1])
	if err != nil {
		return Observation{}, fmt.Errorf("size %q: %w", fields[1], ErrMalformed)
	}
	low, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Observation{}, fmt.Errorf("lowTime %q: %w", fields[2], ErrMalformed)
	}
	high, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Observation{}, fmt.Errorf("highTime %q: %w", fields[3], ErrMalformed)
	}
	o := Observation{Count: count, Size: size, LowRaw: low, HighRaw: high}

	return o, o.Validate()
}
