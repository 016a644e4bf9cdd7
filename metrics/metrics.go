// Package metrics counts stitching and mutation events with Prometheus
// counters. A Recorder satisfies samplepath.Recorder.
//
// Every Recorder owns a private registry, so several can coexist in one
// process (tests, parallel chains).
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/wfpath/path"
)

const namespace = "wfpath"

// Bridge outcome label values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Recorder holds the counters.
type Recorder struct {
	registry *prometheus.Registry

	// Bridges counts bridge proposals. Labels: status (ok, failed).
	Bridges *prometheus.CounterVec

	// Mutations counts applied mutations. Labels: kind (interior, prefix).
	Mutations *prometheus.CounterVec

	// Rollbacks counts undone mutations. Labels: kind.
	Rollbacks *prometheus.CounterVec

	// Commits counts accepted mutations.
	Commits prometheus.Counter
}

// New registers a fresh set of counters on a private registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		Bridges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stitch",
			Name:      "bridges_total",
			Help:      "Bridge proposals by outcome",
		}, []string{"status"}),
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "path",
			Name:      "mutations_total",
			Help:      "Applied path mutations by kind",
		}, []string{"kind"}),
		Rollbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "path",
			Name:      "rollbacks_total",
			Help:      "Undone path mutations by kind",
		}, []string{"kind"}),
		Commits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "path",
			Name:      "commits_total",
			Help:      "Accepted path mutations",
		}),
	}
}

// Registry exposes the private registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// BridgeProposed counts a successful proposal.
func (r *Recorder) BridgeProposed() { r.Bridges.WithLabelValues(StatusOK).Inc() }

// BridgeFailed counts a failed proposal.
func (r *Recorder) BridgeFailed() { r.Bridges.WithLabelValues(StatusFailed).Inc() }

// Mutation counts an applied mutation.
func (r *Recorder) Mutation(kind path.MutationKind) { r.Mutations.WithLabelValues(kind.String()).Inc() }

// Rollback counts an undone mutation.
func (r *Recorder) Rollback(kind path.MutationKind) { r.Rollbacks.WithLabelValues(kind.String()).Inc() }

// Commit counts an accepted mutation.
func (r *Recorder) Commit() { r.Commits.Inc() }

// Sample is one gathered counter value.
type Sample struct {
	Name  string
	Value float64
}

// Gather returns every counter as "name{label=value}" sorted by name.
func (r *Recorder) Gather() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				parts := make([]string, len(labels))
				for i, l := range labels {
					parts[i] = l.GetName() + "=" + l.GetValue()
				}
				name += "{" + strings.Join(parts, ",") + "}"
			}
			out = append(out, Sample{Name: name, Value: m.GetCounter().GetValue()})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
