package main

import (
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/crucible/crucible"
)

// searchMetrics collects per-variant search counters in a private registry,
// so repeated command runs in one process never collide.
type searchMetrics struct {
	registry *prometheus.Registry

	popped   *prometheus.CounterVec
	pushed   *prometheus.CounterVec
	stale    *prometheus.CounterVec
	expanded *prometheus.CounterVec
	maxQueue *prometheus.GaugeVec
	cost     *prometheus.GaugeVec
	duration *prometheus.HistogramVec
	searches *prometheus.CounterVec
}

func newSearchMetrics() *searchMetrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	byVariant := []string{"variant"}

	return &searchMetrics{
		registry: reg,
		popped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crucible",
			Name:      "states_popped_total",
			Help:      "Search states removed from the priority queue.",
		}, byVariant),
		pushed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crucible",
			Name:      "states_pushed_total",
			Help:      "Search states added to the priority queue.",
		}, byVariant),
		stale: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crucible",
			Name:      "states_stale_total",
			Help:      "Popped states already superseded in their frontier.",
		}, byVariant),
		expanded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crucible",
			Name:      "states_expanded_total",
			Help:      "Popped states whose moves were generated.",
		}, byVariant),
		maxQueue: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "crucible",
			Name:      "queue_max_length",
			Help:      "Largest priority queue length seen by the last search.",
		}, byVariant),
		cost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "crucible",
			Name:      "route_cost",
			Help:      "Minimum route cost found by the last search.",
		}, byVariant),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crucible",
			Name:      "search_duration_seconds",
			Help:      "Wall time of one search.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, byVariant),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crucible",
			Name:      "searches_total",
			Help:      "Searches run, by outcome.",
		}, []string{"variant", "outcome"}),
	}
}

func (s *searchMetrics) observe(variant string, res crucible.Result, elapsed time.Duration, err error) {
	st := res.Stats
	s.popped.WithLabelValues(variant).Add(float64(st.Popped))
	s.pushed.WithLabelValues(variant).Add(float64(st.Pushed))
	s.stale.WithLabelValues(variant).Add(float64(st.Stale))
	s.expanded.WithLabelValues(variant).Add(float64(st.Expanded))
	s.maxQueue.WithLabelValues(variant).Set(float64(st.MaxQueue))
	s.duration.WithLabelValues(variant).Observe(elapsed.Seconds())

	outcome := "ok"
	switch {
	case errors.Is(err, crucible.ErrUnreachableGoal):
		outcome = "unreachable"
	case err != nil:
		outcome = "error"
	default:
		s.cost.WithLabelValues(variant).Set(float64(res.Cost))
	}
	s.searches.WithLabelValues(variant, outcome).Inc()
}

// write renders every collected family in the Prometheus text format.
func (s *searchMetrics) write(w io.Writer) error {
	families, err := s.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
