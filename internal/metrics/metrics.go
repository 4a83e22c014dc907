package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_requests_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)

	// Dashboard
	ViewDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_view_duration_seconds",
			Help:    "Time to pivot, filter and render one dashboard view",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	FilteredLocations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_filtered_locations",
			Help:    "Locations left after the hit-count range filter",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	UnbandedLocations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_unbanded_locations_total",
			Help: "Filtered locations whose percent invalid fell in no map band",
		},
	)

	ExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_exports_total",
			Help: "CSV exports served",
		},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_dataset_rows",
			Help: "Rows loaded at startup per dataset",
		},
		[]string{"dataset"},
	)
)

// RecordAPIRequest records one handled HTTP request
func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordView records the cost and size of one dashboard view
func RecordView(duration time.Duration, locations, unbanded int) {
	ViewDuration.Observe(duration.Seconds())
	FilteredLocations.Observe(float64(locations))
	UnbandedLocations.Add(float64(unbanded))
}

// RecordDataset records the loaded dataset sizes
func RecordDataset(hits, exportRows int) {
	DatasetRows.WithLabelValues("raw_hits").Set(float64(hits))
	DatasetRows.WithLabelValues("downloadable_pivot").Set(float64(exportRows))
}
