package infrastructure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediapulse_uploads_total",
		Help: "Dataset uploads by outcome.",
	}, []string{"status"})

	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mediapulse_clean_cache_hits_total",
		Help: "Uploads served from the cleaned dataset cache.",
	})

	dashboardQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mediapulse_dashboard_queries_total",
		Help: "Dashboard filter and aggregate queries.",
	})
)

// RecordUpload counts one upload attempt by outcome, e.g. "success" or
// "schema_error".
func RecordUpload(status string) {
	uploadsTotal.WithLabelValues(status).Inc()
}

// RecordCacheHit counts an upload answered from the clean cache.
func RecordCacheHit() {
	cacheHitsTotal.Inc()
}

// RecordDashboardQuery counts one dashboard computation.
func RecordDashboardQuery() {
	dashboardQueriesTotal.Inc()
}

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
