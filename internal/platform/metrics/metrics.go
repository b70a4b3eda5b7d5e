package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Upstream fetch metrics
	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "source_fetch_duration_seconds",
			Help:    "Duration of collection fetches against the record source",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"collection", "outcome"},
	)

	// Business metrics
	computationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_computations_total",
			Help: "Consolidations and aggregations by outcome",
		},
		[]string{"operation", "outcome"},
	)
)

const (
	OpConsolidate = "consolidate"
	OpAggregate   = "aggregate"
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveHTTP registra un request terminado.
func ObserveHTTP(method, route string, status int, took time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

func InFlightInc() { httpRequestsInFlight.Inc() }
func InFlightDec() { httpRequestsInFlight.Dec() }

// ObserveFetch registra un fetch de colección (ver entities.FetchObserver).
func ObserveFetch(collection string, took time.Duration, err error) {
	fetchDuration.WithLabelValues(collection, outcome(err)).Observe(took.Seconds())
}

func RecordComputation(op string, err error) {
	computationsTotal.WithLabelValues(op, outcome(err)).Inc()
}

// Handler expone /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
