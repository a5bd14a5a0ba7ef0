package wizard

import (
	"strings"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/models"
)

// DefaultPlatforms are the candidate platform ids offered at step 2
var DefaultPlatforms = []string{"windows", "macos", "linux"}

// PlatformOption is one candidate platform and whether it can be selected
type PlatformOption struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
}

// matches is the single comparison used both to gate step 2 and to resolve
// step 3: exact version, case-insensitive platform.
func matches(a models.Artifact, version, platform string) bool {
	return a.Version == version && strings.EqualFold(a.Platform, platform)
}

// Versions lists the selectable versions, newest first
func Versions(artifacts []models.Artifact) []string {
	return catalog.AvailableVersions(artifacts)
}

// PlatformOptions marks each candidate as available when at least one
// artifact of version has that platform.
func PlatformOptions(artifacts []models.Artifact, version string, candidates []string) []PlatformOption {
	options := make([]PlatformOption, 0, len(candidates))
	for _, id := range candidates {
		options = append(options, PlatformOption{
			ID:        id,
			Available: available(artifacts, version, id),
		})
	}
	return options
}

func available(artifacts []models.Artifact, version, platform string) bool {
	_, ok := Match(artifacts, version, platform)
	return ok
}

// Match finds the artifact for (version, platform). Should the backend return
// several, the highest build id wins.
func Match(artifacts []models.Artifact, version, platform string) (models.Artifact, bool) {
	var (
		best  models.Artifact
		found bool
	)
	for _, a := range artifacts {
		if !matches(a, version, platform) {
			continue
		}
		if !found || a.BuildID > best.BuildID {
			best = a
			found = true
		}
	}
	return best, found
}

// HasVersion reports whether any artifact has exactly version
func HasVersion(artifacts []models.Artifact, version string) bool {
	for _, a := range artifacts {
		if a.Version == version {
			return true
		}
	}
	return false
}
