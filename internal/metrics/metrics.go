package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the studio on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// ProviderCalls counts provider calls. Labels: kind, provider, status
	ProviderCalls *prometheus.CounterVec
	// ProviderDuration observes provider call latency. Labels: kind, provider
	ProviderDuration *prometheus.HistogramVec
	// Composites counts studio operations. Labels: operation, status
	Composites *prometheus.CounterVec
	// HistoryItems is the current history length.
	HistoryItems prometheus.Gauge
	// HTTPRequests counts API requests. Labels: method, route, code
	HTTPRequests *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ProviderCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contentspark",
			Name:      "provider_calls_total",
			Help:      "Generation provider calls by kind, provider and status.",
		}, []string{"kind", "provider", "status"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "contentspark",
			Name:      "provider_call_duration_seconds",
			Help:      "Latency of generation provider calls.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}, []string{"kind", "provider"}),
		Composites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contentspark",
			Name:      "studio_operations_total",
			Help:      "Studio operations by operation and status.",
		}, []string{"operation", "status"}),
		HistoryItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "contentspark",
			Name:      "history_items",
			Help:      "Number of items in the generation history.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contentspark",
			Name:      "http_requests_total",
			Help:      "API requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ProviderCalls,
		m.ProviderDuration,
		m.Composites,
		m.HistoryItems,
		m.HTTPRequests,
	)
	return m
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveProviderCall matches ai.CallObserver.
func (m *Metrics) ObserveProviderCall(kind, provider string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.ProviderCalls.WithLabelValues(kind, provider, status(err)).Inc()
	m.ProviderDuration.WithLabelValues(kind, provider).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.Composites.WithLabelValues(operation, status(err)).Inc()
}

func (m *Metrics) SetHistoryItems(n int) {
	if m == nil {
		return
	}
	m.HistoryItems.Set(float64(n))
}

func (m *Metrics) ObserveHTTP(method, route string, code int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
