package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	chatRequestsTotal  *prometheus.CounterVec
	fetchFailuresTotal *prometheus.CounterVec
	fetchDuration      prometheus.Histogram
	completionDuration *prometheus.HistogramVec
	completionFailures *prometheus.CounterVec
}

// NewPrometheusMetrics registers the chat pipeline metrics on the
// default registry. promauto panics on duplicate registration, so
// construct this once per process; tests use NoopMetrics instead.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		chatRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_requests_total",
				Help: "Total number of chat requests by routed pipeline",
			},
			[]string{"route"},
		),
		fetchFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_fetch_failures_total",
				Help: "Total number of degraded budget data fields by field name",
			},
			[]string{"field"},
		),
		fetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_fetch_duration_milliseconds",
				Help:    "Budget data fan-out duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		completionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "completion_duration_milliseconds",
				Help:    "Model completion duration in milliseconds by model",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
			[]string{"model"},
		),
		completionFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "completion_failures_total",
				Help: "Total number of failed model completions by model",
			},
			[]string{"model"},
		),
	}
}

func (m *PrometheusMetrics) RecordChatRequest(route string) {
	m.chatRequestsTotal.WithLabelValues(route).Inc()
}

func (m *PrometheusMetrics) RecordFetchFailure(field string) {
	m.fetchFailuresTotal.WithLabelValues(field).Inc()
}

func (m *PrometheusMetrics) RecordFetchDuration(duration time.Duration) {
	m.fetchDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordCompletion(model string, duration time.Duration, success bool) {
	m.completionDuration.WithLabelValues(model).Observe(float64(duration.Milliseconds()))
	if !success {
		m.completionFailures.WithLabelValues(model).Inc()
	}
}

// NoopMetrics discards every observation. Used in tests, where the
// default Prometheus registry cannot be registered against twice.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) RecordChatRequest(route string)             {}
func (m *NoopMetrics) RecordFetchFailure(field string)            {}
func (m *NoopMetrics) RecordFetchDuration(duration time.Duration) {}

func (m *NoopMetrics) RecordCompletion(model string, duration time.Duration, success bool) {}
