package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/telemetry"
)

// CachedFetcher memoizes successful fetches per query for a bounded time.
// Failures are never cached so the next request retries the backend.
type CachedFetcher struct {
	next  Fetcher
	cache *expirable.LRU[string, []models.Artifact]
}

// NewCachedFetcher wraps next with an LRU of maxSize entries expiring after ttl
func NewCachedFetcher(next Fetcher, maxSize int, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{
		next:  next,
		cache: expirable.NewLRU[string, []models.Artifact](maxSize, nil, ttl),
	}
}

func (c *CachedFetcher) Fetch(ctx context.Context, q Query) ([]models.Artifact, error) {
	if artifacts, ok := c.cache.Get(q.Key()); ok {
		telemetry.CatalogCacheHitsTotal.Inc()
		return cloneArtifacts(artifacts), nil
	}
	telemetry.CatalogCacheMissesTotal.Inc()

	artifacts, err := c.next.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	c.cache.Add(q.Key(), cloneArtifacts(artifacts))
	return artifacts, nil
}

// Purge drops every cached entry
func (c *CachedFetcher) Purge() {
	c.cache.Purge()
}

// Len returns the number of live entries
func (c *CachedFetcher) Len() int {
	return c.cache.Len()
}

func cloneArtifacts(in []models.Artifact) []models.Artifact {
	out := make([]models.Artifact, len(in))
	copy(out, in)
	return out
}
