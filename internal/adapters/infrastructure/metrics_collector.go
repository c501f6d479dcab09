package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetricsCollector implements the MetricsCollector port on a private registry
type PrometheusMetricsCollector struct {
	registry          *prometheus.Registry
	gatewayCalls      *prometheus.CounterVec
	gatewayLatency    *prometheus.HistogramVec
	locationFallbacks prometheus.Counter
	stateTransitions  *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the weather client metrics
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		gatewayCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_gateway_calls_total",
				Help: "The total number of weather provider calls by outcome",
			},
			[]string{"operation", "outcome"},
		),
		gatewayLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_gateway_duration_seconds",
				Help:    "Weather provider call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		locationFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "weather_location_fallbacks_total",
				Help: "The total number of refreshes that used the fallback coordinate",
			},
		),
		stateTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_state_transitions_total",
				Help: "The total number of UI state transitions by operation and event",
			},
			[]string{"operation", "event"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordGatewayCall(ctx context.Context, operation, outcome string, duration time.Duration) {
	m.gatewayCalls.WithLabelValues(operation, outcome).Inc()
	m.gatewayLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordLocationFallback(ctx context.Context) {
	m.locationFallbacks.Inc()
}

func (m *PrometheusMetricsCollector) RecordStateTransition(ctx context.Context, operation, event string) {
	m.stateTransitions.WithLabelValues(operation, event).Inc()
}

// Registry exposes the underlying registry, mainly for tests
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
