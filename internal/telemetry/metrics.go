// Package telemetry provides observability for the download portal: Prometheus
// metrics registered against the default registry and an OpenTelemetry tracer
// provider.
//
// HTTP metrics use c.FullPath() (route template such as /api/v1/releases/:version)
// rather than the raw request URL so that version strings from the path do not
// create unbounded label cardinality.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics, labelled by method, route template, and status code.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route template, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route template.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)
)

// Catalog metrics.
//
// CatalogFetchesTotal is labelled {collection, outcome} where outcome is
// "loaded" or "failed". CatalogFetchDuration covers the backend round trip only.
var (
	CatalogFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_catalog_fetches_total",
			Help: "Total number of catalog fetch cycles, by collection and outcome.",
		},
		[]string{"collection", "outcome"},
	)

	CatalogFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_catalog_fetch_duration_seconds",
			Help:    "Histogram of backend catalog fetch latencies, by collection.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection"},
	)

	CatalogCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_catalog_cache_hits_total",
		Help: "Total number of catalog cache hits.",
	})

	CatalogCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_catalog_cache_misses_total",
		Help: "Total number of catalog cache misses.",
	})
)

// DownloadsInitiatedTotal counts download actions handed to a launcher,
// labelled {kind, platform}. Completion is not observable, so there is no
// matching "completed" counter.
var DownloadsInitiatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portal_downloads_initiated_total",
		Help: "Total number of download actions initiated, by artifact kind and platform.",
	},
	[]string{"kind", "platform"},
)

// Outcome label values for CatalogFetchesTotal
const (
	OutcomeLoaded = "loaded"
	OutcomeFailed = "failed"
)
