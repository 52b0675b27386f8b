package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dashboard", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dashboard", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dashboard", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	PanelFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dashboard", Name: "panel_failures_total", Help: "Suppressed per-panel computation failures."},
		[]string{"panel"},
	)
	DatasetRows = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "dashboard", Name: "dataset_rows", Help: "Rows in the loaded dataset."},
	)
	DatasetLoadSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dashboard", Name: "dataset_load_seconds",
			Help:    "Dataset file load+preprocess duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Serve starts the optional standalone metrics listener when METRICS_ADDR is
// set; the registry handler is also mounted on the API mux either way.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, PanelFailures, DatasetRows, DatasetLoadSeconds)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObservePanelFailure(panel string) {
	PanelFailures.WithLabelValues(panel).Inc()
}

func ObserveDatasetLoad(rows int, dur time.Duration) {
	DatasetRows.Set(float64(rows))
	DatasetLoadSeconds.Observe(dur.Seconds())
}
