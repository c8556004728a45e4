package summarize

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeInputTooShort = "input_too_short"
	OutcomeEmptyResponse = "empty_response"
	OutcomeProviderError = "provider_error"
)

// Fallback reasons.
const (
	FallbackExpansion       = "expansion"
	FallbackStrictShortness = "strict_shortness"
)

// MetricsRecorder receives summarization measurements.
type MetricsRecorder interface {
	// ObserveRequest records one Summarize call and its outcome.
	ObserveRequest(outcome string, d time.Duration)

	// ObserveFallback records a guardrail replacing the model output.
	ObserveFallback(reason string)

	// ObserveLength records the length of a returned summary in characters.
	ObserveLength(chars int)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) ObserveRequest(string, time.Duration) {}
func (NoopMetrics) ObserveFallback(string)               {}
func (NoopMetrics) ObserveLength(int)                    {}

// PrometheusMetrics implements MetricsRecorder with Prometheus collectors.
type PrometheusMetrics struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
	length    prometheus.Histogram
}

// NewPrometheusMetrics registers the summarizer collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	f := promauto.With(reg)
	return &PrometheusMetrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "summarizer_requests_total",
			Help: "Summarize calls by outcome",
		}, []string{"outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "summarizer_request_duration_seconds",
			Help:    "Time taken by Summarize, LLM call included",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"outcome"}),
		fallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "summarizer_guardrail_fallbacks_total",
			Help: "Summaries where a guardrail replaced or cut the model output",
		}, []string{"reason"}),
		length: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "summarizer_summary_length_characters",
			Help:    "Distribution of returned summary lengths in characters",
			Buckets: []float64{50, 100, 200, 300, 500, 800, 1200, 2000},
		}),
	}
}

func (p *PrometheusMetrics) ObserveRequest(outcome string, d time.Duration) {
	p.requests.WithLabelValues(outcome).Inc()
	p.duration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (p *PrometheusMetrics) ObserveFallback(reason string) {
	p.fallbacks.WithLabelValues(reason).Inc()
}

func (p *PrometheusMetrics) ObserveLength(chars int) {
	p.length.Observe(float64(chars))
}
