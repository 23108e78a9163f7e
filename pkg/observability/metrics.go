package observability

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/lingo/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the collectors fed by exploration hooks.
type Metrics struct {
	StateVisits   *prometheus.CounterVec
	WordsAccepted prometheus.Counter
	Backtracks    prometheus.Counter
	Matches       *prometheus.CounterVec
	MatchSteps    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		StateVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lingo_state_visits_total",
				Help: "Total number of state visits during exploration",
			},
			[]string{"state"},
		),
		WordsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lingo_words_accepted_total",
			Help: "Total number of distinct words produced by the generator",
		}),
		Backtracks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lingo_backtracks_total",
			Help: "Total number of backtracking steps",
		}),
		Matches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lingo_matches_total",
				Help: "Total number of match queries by result",
			},
			[]string{"result"},
		),
		MatchSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lingo_match_steps",
			Help:    "Search steps taken per match query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	for _, c := range []prometheus.Collector{m.StateVisits, m.WordsAccepted, m.Backtracks, m.Matches, m.MatchSteps} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnVisit: func(ctx context.Context, e *domain.VisitEvent) {
			m.StateVisits.WithLabelValues(strconv.Itoa(e.State)).Inc()
		},
		OnAccept: func(ctx context.Context, e *domain.AcceptEvent) {
			m.WordsAccepted.Inc()
		},
		OnBacktrack: func(ctx context.Context, e *domain.VisitEvent) {
			m.Backtracks.Inc()
		},
		OnMatch: func(ctx context.Context, e *domain.MatchEvent) {
			result := "rejected"
			if e.Found {
				result = "accepted"
			}
			m.Matches.WithLabelValues(result).Inc()
			m.MatchSteps.Observe(float64(e.Steps))
		},
	}
}

// WriteText gathers g and writes it in the prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
