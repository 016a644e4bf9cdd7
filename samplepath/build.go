// SPDX-License-Identifier: MIT

package samplepath

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wfpath/grid"
	"github.com/katalvlaran/wfpath/measure"
	"github.com/katalvlaran/wfpath/path"
	"github.com/katalvlaran/wfpath/popsize"
	"github.com/katalvlaran/wfpath/sample"
)

// Build stitches one bridge per pair of consecutive observations into a
// single SamplePath. obs is copied and stably sorted by time. A nil history
// means constant population size.
//
// Complexity: O(Len + NumObservations·log NumObservations) plus the proposer.
//
// Errors:
//   - sample.ErrCountRange or sample.ErrTimeRange for an invalid observation.
//   - ErrTooFewObservations, ErrDegenerateInterval.
//   - ErrBreakTimes if history returns a malformed list.
//   - grid errors for unusable step settings.
//   - path.ErrBridgeFailed wrapping the proposer's error.
func Build(obs []sample.Observation, history BreakTimer, proposer measure.Proposer, opts ...Option) (*SamplePath, error) {
	cfg := newConfig(opts...)
	if proposer == nil {
		return nil, fmt.Errorf("Build: nil proposer: %w", path.ErrNilPath)
	}
	if history == nil {
		history = popsize.Constant()
	}
	if len(obs) < 2 {
		return nil, fmt.Errorf("Build: %d observations: %w", len(obs), ErrTooFewObservations)
	}
	for i, o := range obs {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("Build: observation %d: %w", i, err)
		}
	}
	obs = append([]sample.Observation(nil), obs...)
	sample.SortByTime(obs)
	for i := 1; i < len(obs); i++ {
		if obs[i].Time == obs[i-1].Time {
			return nil, fmt.Errorf("Build: observations %d and %d at t=%v: %w", i-1, i, obs[i].Time, ErrDegenerateInterval)
		}
	}

	latent, firstNonzero := initialValues(obs, proposer)
	breaks, err := collectBreaks(obs, history)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	p := &path.Path{}
	index := make([]int, len(obs))
	seg := []float64{breaks[0]}
	dt := cfg.step
	next := 1
	for _, b := range breaks[1:] {
		seg, dt, err = grid.Extend(seg, b, dt, cfg.minSteps)
		if err != nil {
			return nil, fmt.Errorf("Build: grid to t=%v: %w", b, err)
		}
		if b != obs[next].Time {
			continue
		}
		bridge, err := path.NewBridgeOnGrid(latent[next-1], latent[next], seg, proposer)
		if err != nil {
			cfg.rec.BridgeFailed()
			return nil, fmt.Errorf("Build: segment %d: %w", next, err)
		}
		cfg.rec.BridgeProposed()
		if p.Len() == 0 {
			err = p.Append(bridge)
		} else {
			err = p.AppendFrom(bridge, 1)
		}
		if err != nil {
			return nil, fmt.Errorf("Build: segment %d: %w", next, err)
		}
		index[next] = p.Len() - 1
		next++
		seg = []float64{b}
	}
	if next != len(obs) {
		return nil, fmt.Errorf("Build: reached %d of %d observations: %w", next, len(obs), ErrBreakTimes)
	}

	cfg.logger.Debug("sample path built",
		slog.Int("observations", len(obs)),
		slog.Int("points", p.Len()),
		slog.Int("breaks", len(breaks)),
		slog.Float64("step", dt))

	return &SamplePath{
		p:            p,
		obs:          obs,
		index:        index,
		age:          obs[0].Time,
		oldAge:       obs[0].Time,
		firstNonzero: firstNonzero,
		rec:          cfg.rec,
		logger:       cfg.logger,
	}, nil
}

// initialValues clamps count/size into [Epsilon, 1−Epsilon] and maps it to
// the latent scale. It also returns the first observation with a nonzero
// count, or −1.
func initialValues(obs []sample.Observation, proposer measure.Proposer) ([]float64, int) {
	latent := make([]float64, len(obs))
	firstNonzero := -1
	for i, o := range obs {
		f := o.Frequency()
		if f < Epsilon {
			f = Epsilon
		}
		if f > 1-Epsilon {
			f = 1 - Epsilon
		}
		latent[i] = proposer.ToLatent(f)
		if firstNonzero < 0 && o.Count > 0 {
			firstNonzero = i
		}
	}

	return latent, firstNonzero
}

// collectBreaks concatenates the per-pair break lists without their last
// entry and closes with the final observation time.
func collectBreaks(obs []sample.Observation, history BreakTimer) ([]float64, error) {
	var out []float64
	for i := 0; i+1 < len(obs); i++ {
		t0, t1 := obs[i].Time, obs[i+1].Time
		bt, err := history.BreakTimes(t0, t1)
		if err != nil {
			return nil, fmt.Errorf("break times on [%v, %v]: %w: %w", t0, t1, ErrBreakTimes, err)
		}
		if len(bt) < 2 || bt[0] != t0 || bt[len(bt)-1] != t1 {
			return nil, fmt.Errorf("break times on [%v, %v] = %v: %w", t0, t1, bt, ErrBreakTimes)
		}
		for k := 1; k < len(bt); k++ {
			if !(bt[k-1] < bt[k]) {
				return nil, fmt.Errorf("break times on [%v, %v] = %v: %w", t0, t1, bt, ErrBreakTimes)
			}
		}
		out = append(out, bt[:len(bt)-1]...)
	}

	return append(out, obs[len(obs)-1].Time), nil
}
