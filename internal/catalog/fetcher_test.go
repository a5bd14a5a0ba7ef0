package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/giraffecloud-portal/internal/models"
)

func newBackend(t *testing.T, status int, body string, seen *http.Request) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = *r.Clone(context.Background())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcherEnvelopeShapes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantFirst string
	}{
		{"array", `{"data":[{"version":"1.0","build_id":1},{"version":"2.0","build_id":2}]}`, 2, "1.0"},
		{"single object", `{"data":{"version":"1.5","build_id":9,"platform":"linux"}}`, 1, "1.5"},
		{"null", `{"data":null}`, 0, ""},
		{"absent", `{}`, 0, ""},
		{"empty array", `{"data":[]}`, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, http.StatusOK, tt.body, nil)
			f := NewHTTPFetcher(srv.URL+"/releases", time.Second)

			artifacts, err := f.Fetch(context.Background(), Query{})
			require.NoError(t, err)
			require.NotNil(t, artifacts)
			assert.Len(t, artifacts, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, artifacts[0].Version)
			}
		})
	}
}

func TestHTTPFetcherQueryParameters(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{"no filters", Query{}, ""},
		{"version only", Query{Version: "1.2"}, "version=1.2"},
		{"build only", Query{BuildID: "42"}, "build_id=42"},
		{"both", Query{Version: "1.2", BuildID: "42"}, "build_id=42&version=1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen http.Request
			srv := newBackend(t, http.StatusOK, `{"data":[]}`, &seen)
			f := NewHTTPFetcher(srv.URL+"/devbuilds", time.Second)

			_, err := f.Fetch(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, "/devbuilds", seen.URL.Path)
			assert.Equal(t, tt.want, seen.URL.RawQuery)
		})
	}
}

func TestHTTPFetcherNon2xx(t *testing.T) {
	srv := newBackend(t, http.StatusNotFound, `{"error":"nope"}`, nil)
	f := NewHTTPFetcher(srv.URL+"/releases", time.Second)

	_, err := f.Fetch(context.Background(), Query{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	assert.Equal(t, "404 Not Found", Reason(err, "fallback"))
}

func TestHTTPFetcherMalformedBody(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{"data": 42}`, nil)
	f := NewHTTPFetcher(srv.URL+"/releases", time.Second)

	_, err := f.Fetch(context.Background(), Query{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestHTTPFetcherTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, 50*time.Millisecond)
	_, err := f.Fetch(context.Background(), Query{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestCollectionEndpoint(t *testing.T) {
	assert.Equal(t, "https://api.example.com/releases", CollectionEndpoint("https://api.example.com/", models.KindRelease))
	assert.Equal(t, "https://api.example.com/devbuilds", CollectionEndpoint("https://api.example.com", models.KindDevBuild))
}

func TestQueryURL(t *testing.T) {
	assert.Equal(t, "http://x/releases", Query{}.URL("http://x/releases"))
	assert.Equal(t, "http://x/releases?version=1.0", Query{Version: "1.0"}.URL("http://x/releases"))
	assert.Equal(t, "http://x/r?a=b&build_id=3", Query{BuildID: "3"}.URL("http://x/r?a=b"))
}

func TestReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"status text wins", &FetchError{Status: 500, StatusText: "500 Internal Server Error", Err: errors.New("boom")}, "500 Internal Server Error"},
		{"error message", &FetchError{Err: errors.New("connection refused")}, "connection refused"},
		{"bare fetch error", &FetchError{}, "Failed to load releases"},
		{"plain error", errors.New("dial tcp: timeout"), "dial tcp: timeout"},
		{"nil", nil, "Failed to load releases"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reason(tt.err, "Failed to load releases"))
		})
	}
}
