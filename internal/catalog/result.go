package catalog

import (
	"github.com/osa911/giraffecloud-portal/internal/models"
)

// State is the phase of one fetch cycle
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText renders the state name in JSON responses
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Catalog is an immutable snapshot of the artifacts loaded for one query
type Catalog struct {
	kind      models.Kind
	query     Query
	artifacts []models.Artifact
}

// NewCatalog copies artifacts into a new snapshot
func NewCatalog(kind models.Kind, q Query, artifacts []models.Artifact) Catalog {
	cp := make([]models.Artifact, len(artifacts))
	copy(cp, artifacts)
	return Catalog{kind: kind, query: q, artifacts: cp}
}

func (c Catalog) Kind() models.Kind { return c.kind }
func (c Catalog) Query() Query      { return c.query }
func (c Catalog) Len() int          { return len(c.artifacts) }

// Artifacts returns a copy of the artifacts in backend order
func (c Catalog) Artifacts() []models.Artifact {
	cp := make([]models.Artifact, len(c.artifacts))
	copy(cp, c.artifacts)
	return cp
}

// FetchResult is the single discriminated value describing a fetch cycle.
// Catalog is only meaningful when State is StateLoaded, Reason only when
// State is StateFailed.
type FetchResult struct {
	State   State
	Catalog Catalog
	Reason  string
}

func Idle() FetchResult { return FetchResult{State: StateIdle} }

func Loading() FetchResult { return FetchResult{State: StateLoading} }

func Loaded(c Catalog) FetchResult { return FetchResult{State: StateLoaded, Catalog: c} }

func Failed(reason string) FetchResult { return FetchResult{State: StateFailed, Reason: reason} }

// Artifacts returns the loaded artifacts, or an empty list in any other state
func (r FetchResult) Artifacts() []models.Artifact {
	if r.State != StateLoaded {
		return []models.Artifact{}
	}
	return r.Catalog.Artifacts()
}
