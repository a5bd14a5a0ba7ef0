package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/logging"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/osa911/giraffecloud-portal/internal/catalog"

// Store holds the current fetch cycle of one collection endpoint. Each fetch
// replaces the whole catalog. Overlapping fetches are not cancelled: the one
// that resolves last wins.
type Store struct {
	kind     models.Kind
	fetcher  Fetcher
	fallback string
	logger   *logging.Logger

	mu          sync.RWMutex
	result      FetchResult
	query       Query
	fetched     bool
	subscribers []func(FetchResult)
}

// NewStore creates an idle store for the given collection
func NewStore(kind models.Kind, fetcher Fetcher) *Store {
	return &Store{
		kind:     kind,
		fetcher:  fetcher,
		fallback: "Failed to load " + kind.Label(),
		logger:   logging.GetGlobalLogger(),
		result:   Idle(),
	}
}

// Kind returns the collection the store fetches
func (s *Store) Kind() models.Kind {
	return s.kind
}

// Result returns the current fetch result
func (s *Store) Result() FetchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Query returns the query of the most recently started fetch
func (s *Store) Query() Query {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Subscribe registers fn to receive every state transition. fn is called
// synchronously and must not call back into the store's Fetch.
func (s *Store) Subscribe(fn func(FetchResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SetQuery fetches only when q differs from the current route-derived query
// or nothing has been fetched yet.
func (s *Store) SetQuery(ctx context.Context, q Query) FetchResult {
	s.mu.RLock()
	unchanged := s.fetched && s.query == q
	current := s.result
	s.mu.RUnlock()

	if unchanged {
		return current
	}
	return s.Fetch(ctx, q)
}

// Fetch runs one fetch cycle: Loading, then Loaded or Failed. Failures are
// converted into the Failed state and never returned as errors.
func (s *Store) Fetch(ctx context.Context, q Query) FetchResult {
	s.mu.Lock()
	s.query = q
	s.fetched = true
	s.mu.Unlock()
	s.publish(Loading())

	ctx, span := otel.Tracer(tracerName).Start(ctx, "catalog.Fetch")
	span.SetAttributes(
		attribute.String("catalog.collection", s.kind.Collection()),
		attribute.String("catalog.version", q.Version),
		attribute.String("catalog.build_id", q.BuildID),
	)
	defer span.End()

	start := time.Now()
	artifacts, err := s.fetcher.Fetch(ctx, q)
	telemetry.CatalogFetchDuration.WithLabelValues(s.kind.Collection()).Observe(time.Since(start).Seconds())

	var result FetchResult
	if err != nil {
		reason := Reason(err, s.fallback)
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
		telemetry.CatalogFetchesTotal.WithLabelValues(s.kind.Collection(), telemetry.OutcomeFailed).Inc()
		s.logger.Warn("Failed to fetch %s (version=%q build_id=%q): %v", s.kind.Label(), q.Version, q.BuildID, err)
		result = Failed(reason)
	} else {
		span.SetAttributes(attribute.Int("catalog.artifacts", len(artifacts)))
		telemetry.CatalogFetchesTotal.WithLabelValues(s.kind.Collection(), telemetry.OutcomeLoaded).Inc()
		s.logger.Debug("Fetched %d %s (version=%q build_id=%q)", len(artifacts), s.kind.Label(), q.Version, q.BuildID)
		result = Loaded(NewCatalog(s.kind, q, artifacts))
	}

	s.publish(result)
	return result
}

func (s *Store) publish(r FetchResult) {
	s.mu.Lock()
	s.result = r
	subscribers := make([]func(FetchResult), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(r)
	}
}
