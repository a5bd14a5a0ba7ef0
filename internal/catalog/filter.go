package catalog

import (
	"sort"

	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/version"
)

// Filter is the transient version/platform constraint of a catalog view.
// Empty fields mean no filter. Both match exactly, case included.
type Filter struct {
	Version  string `json:"version,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// TogglePlatform selects p, or clears the platform filter if p is already selected
func (f Filter) TogglePlatform(p string) Filter {
	if f.Platform == p {
		f.Platform = ""
	} else {
		f.Platform = p
	}
	return f
}

// WithVersion replaces the version filter
func (f Filter) WithVersion(v string) Filter {
	f.Version = v
	return f
}

// IsEmpty reports whether no filter is active
func (f Filter) IsEmpty() bool {
	return f.Version == "" && f.Platform == ""
}

// AvailableVersions returns the distinct versions, newest first
func AvailableVersions(artifacts []models.Artifact) []string {
	versions := distinct(artifacts, func(a models.Artifact) string { return a.Version })
	version.SortDescending(versions)
	return versions
}

// AvailablePlatforms returns the distinct platforms in plain string order
func AvailablePlatforms(artifacts []models.Artifact) []string {
	platforms := distinct(artifacts, func(a models.Artifact) string { return a.Platform })
	sort.Strings(platforms)
	return platforms
}

// Visible applies f to artifacts and sorts the result by version descending,
// then build id descending. The input slice is not modified.
func Visible(artifacts []models.Artifact, f Filter) []models.Artifact {
	out := make([]models.Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		if f.Version != "" && a.Version != f.Version {
			continue
		}
		if f.Platform != "" && a.Platform != f.Platform {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := version.Compare(out[i].Version, out[j].Version); c != 0 {
			return c > 0
		}
		return out[i].BuildID > out[j].BuildID
	})
	return out
}

// EmptyHint tells an empty catalog apart from filters that exclude everything
type EmptyHint int

const (
	HintNone EmptyHint = iota
	HintNoData
	HintNoMatch
)

func (h EmptyHint) String() string {
	switch h {
	case HintNoData:
		return "no_data"
	case HintNoMatch:
		return "no_match"
	default:
		return "none"
	}
}

func (h EmptyHint) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Message is the user-facing copy for the hint
func (h EmptyHint) Message(kind models.Kind) string {
	switch h {
	case HintNoData:
		return "No " + kind.Label() + " found."
	case HintNoMatch:
		return "No " + kind.Label() + " match the selected filters. Try adjusting the version or platform."
	default:
		return ""
	}
}

// Hint classifies why Visible(artifacts, f) would be empty
func Hint(artifacts []models.Artifact, f Filter) EmptyHint {
	if len(artifacts) == 0 {
		return HintNoData
	}
	return hintFor(len(artifacts), len(Visible(artifacts, f)))
}

func hintFor(total, visible int) EmptyHint {
	switch {
	case total == 0:
		return HintNoData
	case visible == 0:
		return HintNoMatch
	default:
		return HintNone
	}
}

// View bundles the derived views of a catalog under one filter
type View struct {
	Versions  []string          `json:"available_versions"`
	Platforms []string          `json:"available_platforms"`
	Items     []models.Artifact `json:"items"`
	Hint      EmptyHint         `json:"empty_hint"`
}

// NewView derives every view at once
func NewView(c Catalog, f Filter) View {
	artifacts := c.artifacts
	items := Visible(artifacts, f)
	return View{
		Versions:  AvailableVersions(artifacts),
		Platforms: AvailablePlatforms(artifacts),
		Items:     items,
		Hint:      hintFor(len(artifacts), len(items)),
	}
}

func distinct(artifacts []models.Artifact, key func(models.Artifact) string) []string {
	seen := make(map[string]struct{}, len(artifacts))
	out := make([]string, 0)
	for _, a := range artifacts {
		k := key(a)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
