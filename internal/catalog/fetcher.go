package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/models"
)

// Fetcher retrieves the artifact list of one collection endpoint
type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]models.Artifact, error)
}

// HTTPFetcher fetches a collection endpoint that answers with the
// {"data": [...] | {...} | null} envelope.
type HTTPFetcher struct {
	Endpoint   string
	HTTPClient *http.Client
}

// NewHTTPFetcher creates a fetcher for the given collection endpoint URL
func NewHTTPFetcher(endpoint string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		Endpoint: strings.TrimRight(endpoint, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CollectionEndpoint builds "{base}/releases" or "{base}/devbuilds"
func CollectionEndpoint(base string, kind models.Kind) string {
	return strings.TrimRight(base, "/") + "/" + kind.Collection()
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Fetch performs one GET against the endpoint. Non-2xx responses and
// transport errors are returned as *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, q Query) ([]models.Artifact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.URL(f.Endpoint), nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{Status: resp.StatusCode, StatusText: resp.Status}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	artifacts, err := DecodeData(env.Data)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	return artifacts, nil
}

// DecodeData normalizes the envelope's data field: an array passes through,
// a single object becomes a one-element list, null or absent becomes empty.
func DecodeData(data json.RawMessage) ([]models.Artifact, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []models.Artifact{}, nil
	}

	switch trimmed[0] {
	case '[':
		var artifacts []models.Artifact
		if err := json.Unmarshal(trimmed, &artifacts); err != nil {
			return nil, fmt.Errorf("failed to decode artifact list: %w", err)
		}
		if artifacts == nil {
			artifacts = []models.Artifact{}
		}
		return artifacts, nil
	case '{':
		var artifact models.Artifact
		if err := json.Unmarshal(trimmed, &artifact); err != nil {
			return nil, fmt.Errorf("failed to decode artifact: %w", err)
		}
		return []models.Artifact{artifact}, nil
	default:
		return nil, fmt.Errorf("unexpected data payload starting with %q", trimmed[0])
	}
}
