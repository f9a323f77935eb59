package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for giftgen_generations_total.
const (
	OutcomeOK                = "ok"
	OutcomeInvalidInput      = "invalid_input"
	OutcomeGenerationFailure = "generation_failure"
)

// Metrics owns its own registry so several servers (and tests) can live in
// one process. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	generationsTotal   *prometheus.CounterVec
	ideasExtracted     *prometheus.CounterVec
	ideasReturned      *prometheus.CounterVec
	historySize        prometheus.Gauge
	completionDuration prometheus.Histogram
}

// NewMetrics registers the pipeline collectors. provider is attached to the
// completion latency histogram as a constant label.
func NewMetrics(provider string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "giftgen_generations_total",
				Help: "Gift generation requests by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		ideasExtracted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "giftgen_ideas_extracted_total",
				Help: "Gift ideas parsed out of model completions",
			},
			[]string{"mode"},
		),
		ideasReturned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "giftgen_ideas_returned_total",
				Help: "Gift ideas returned after deduplication",
			},
			[]string{"mode"},
		),
		historySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "giftgen_history_size",
				Help: "Gift ideas held in the deduplication history",
			},
		),
		completionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "giftgen_completion_duration_seconds",
				Help:        "Latency of completion calls",
				Buckets:     []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
				ConstLabels: prometheus.Labels{"provider": provider},
			},
		),
	}

	m.registry.MustRegister(
		m.generationsTotal,
		m.ideasExtracted,
		m.ideasReturned,
		m.historySize,
		m.completionDuration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveGeneration(mode, outcome string) {
	if m == nil {
		return
	}
	m.generationsTotal.WithLabelValues(mode, outcome).Inc()
}

func (m *Metrics) ObserveIdeas(mode string, extracted, returned int) {
	if m == nil {
		return
	}
	m.ideasExtracted.WithLabelValues(mode).Add(float64(extracted))
	m.ideasReturned.WithLabelValues(mode).Add(float64(returned))
}

func (m *Metrics) SetHistorySize(n int) {
	if m == nil {
		return
	}
	m.historySize.Set(float64(n))
}

func (m *Metrics) ObserveCompletion(d time.Duration) {
	if m == nil {
		return
	}
	m.completionDuration.Observe(d.Seconds())
}
