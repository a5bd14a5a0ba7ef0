package telemetry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestMetricsRegistered(t *testing.T) {
	type describer interface {
		Describe(chan<- *prometheus.Desc)
	}

	cases := []struct {
		name string
		c    describer
	}{
		{"portal_http_requests_total", HTTPRequestsTotal},
		{"portal_http_request_duration_seconds", HTTPRequestDuration},
		{"portal_catalog_fetches_total", CatalogFetchesTotal},
		{"portal_catalog_fetch_duration_seconds", CatalogFetchDuration},
		{"portal_catalog_cache_hits_total", CatalogCacheHitsTotal},
		{"portal_catalog_cache_misses_total", CatalogCacheMissesTotal},
		{"portal_downloads_initiated_total", DownloadsInitiatedTotal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ch := make(chan *prometheus.Desc, 4)
			tc.c.Describe(ch)
			close(ch)
			desc := <-ch
			require.NotNil(t, desc)
			assert.Contains(t, desc.String(), tc.name)
		})
	}
}

func TestCatalogFetchesCounter(t *testing.T) {
	before := testutil.ToFloat64(CatalogFetchesTotal.WithLabelValues("releases", OutcomeLoaded))
	CatalogFetchesTotal.WithLabelValues("releases", OutcomeLoaded).Inc()
	after := testutil.ToFloat64(CatalogFetchesTotal.WithLabelValues("releases", OutcomeLoaded))
	assert.Equal(t, before+1, after)
}

func TestSetupTracingWithoutEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "", "test")
	require.NoError(t, err)
	defer shutdown(context.Background())

	_, span := otel.Tracer("test").Start(context.Background(), "span")
	assert.True(t, span.SpanContext().IsValid())
	span.End()
}
