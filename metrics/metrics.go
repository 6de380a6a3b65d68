// Package metrics holds the prometheus collectors of the engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kickoff"

type Metrics struct {
	registry *prometheus.Registry

	FixturesGenerated   *prometheus.CounterVec
	ResultsSaved        *prometheus.CounterVec
	TiebreakersCreated  prometheus.Counter
	BracketRounds       prometheus.Counter
	BroadcastsDropped   prometheus.Counter
	StandingsComputeSec prometheus.Histogram
}

// New registers every collector on a fresh registry, along with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		FixturesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fixtures_generated_total",
			Help:      "Matches created by fixture generation, by format.",
		}, []string{"format"}),
		ResultsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_results_saved_total",
			Help:      "Match results recorded, by input mode.",
		}, []string{"mode"}),
		TiebreakersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tiebreakers_created_total",
			Help:      "Tiebreaker matches created for drawn knockout matches.",
		}),
		BracketRounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bracket_rounds_advanced_total",
			Help:      "Elimination rounds appended from completed results.",
		}),
		BroadcastsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcasts_dropped_total",
			Help:      "Live update messages that could not be delivered.",
		}),
		StandingsComputeSec: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "standings_compute_seconds",
			Help:      "Time spent computing a standings table and its statistics.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.FixturesGenerated,
		m.ResultsSaved,
		m.TiebreakersCreated,
		m.BracketRounds,
		m.BroadcastsDropped,
		m.StandingsComputeSec,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSince records the time elapsed since start on h.
func ObserveSince(h prometheus.Observer, start time.Time) {
	h.Observe(time.Since(start).Seconds())
}
