package catalog

import (
	"net/url"
	"strings"
)

// Query holds the route-derived fetch filters. An empty field means no
// filter on that axis.
type Query struct {
	Version string `json:"version,omitempty"`
	BuildID string `json:"build_id,omitempty"`
}

// Values returns the query parameters, omitting empty filters
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Version != "" {
		values.Set("version", q.Version)
	}
	if q.BuildID != "" {
		values.Set("build_id", q.BuildID)
	}
	return values
}

// URL appends the query parameters to endpoint
func (q Query) URL(endpoint string) string {
	encoded := q.Values().Encode()
	if encoded == "" {
		return endpoint
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + encoded
}

// Key is a stable cache key for the query
func (q Query) Key() string {
	return q.Version + "\x00" + q.BuildID
}
