package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the per-handler instrumentation. Each handler gets its own
// registry so tests can spin up servers independently.
type metrics struct {
	registry       *prometheus.Registry
	requestsTotal  *prometheus.CounterVec
	requestSeconds *prometheus.HistogramVec
	pathsExtracted prometheus.Counter
	budgetTrips    prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asnpath",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests handled, by handler and status code.",
		}, []string{"handler", "code"}),
		requestSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "asnpath",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time spent handling a request.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler"}),
		pathsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "asnpath",
			Subsystem: "http",
			Name:      "paths_extracted_total",
			Help:      "Paths returned by the extract endpoint.",
		}),
		budgetTrips: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "asnpath",
			Subsystem: "http",
			Name:      "budget_trips_total",
			Help:      "Extractions aborted because the node budget was exhausted.",
		}),
	}
}

func (m *metrics) observe(handler string, code int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(handler, strconv.Itoa(code)).Inc()
	if elapsed > 0 {
		m.requestSeconds.WithLabelValues(handler).Observe(elapsed.Seconds())
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
