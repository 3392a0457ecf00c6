package observability

import (
	"strconv"
	"time"

	"github.com/jonathan/skill-intel/internal/types"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "skill_intel"

// Metrics holds the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	engineResults *prometheus.CounterVec
	llmRetries    prometheus.Counter
	httpDuration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		engineResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "engine_results_total",
				Help:      "Engine results by engine and producing path (ai or fallback)",
			},
			[]string{"engine", "source"},
		),
		llmRetries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "llm_retries_total",
				Help:      "Rate-limited model calls that were retried",
			},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
	m.registry.MustRegister(m.engineResults, m.llmRetries, m.httpDuration)
	return m
}

// Registry returns the registry to expose, or nil for a nil Metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordEngineResult counts one engine result.
func (m *Metrics) RecordEngineResult(engine string, source types.ResultSource) {
	if m == nil {
		return
	}
	m.engineResults.WithLabelValues(engine, string(source)).Inc()
}

// RecordLLMRetry counts one retried model call. Its signature matches
// llm.RetryConfig.OnRetry.
func (m *Metrics) RecordLLMRetry(_ int, _ time.Duration) {
	if m == nil {
		return
	}
	m.llmRetries.Inc()
}

// ObserveHTTP records the duration of one HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
