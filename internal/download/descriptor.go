// Package download resolves an artifact into a download descriptor and hands
// it to a launcher. Launching is fire-and-forget: a launcher reports that the
// download was initiated, never that the browser finished it.
package download

import (
	"fmt"
	"strings"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/models"
)

// Descriptor is the resolved download target of one artifact
type Descriptor struct {
	Kind     models.Kind    `json:"kind"`
	Version  string         `json:"version"`
	Platform string         `json:"platform"`
	BuildID  models.BuildID `json:"build_id"`
	Link     string         `json:"link"`
	Filename string         `json:"filename"`
	// Size is nil when the backend did not report a usable size
	Size *int64    `json:"size"`
	Date time.Time `json:"date"`
	// DateFallback is set when Date is the resolution time rather than the upload time
	DateFallback bool `json:"date_fallback"`
}

// Link builds {root}/release/download/{id} or {root}/devbuild/download/{id}
func Link(apiRoot string, kind models.Kind, id models.BuildID) string {
	return fmt.Sprintf("%s/%s/download/%s", strings.TrimRight(apiRoot, "/"), kind, id)
}

// Resolve builds the descriptor for a matched artifact. now supplies the date
// when the artifact has no upload timestamp.
func Resolve(apiRoot string, kind models.Kind, a models.Artifact, now func() time.Time) Descriptor {
	d := Descriptor{
		Kind:     kind,
		Version:  a.Version,
		Platform: a.Platform,
		BuildID:  a.BuildID,
		Link:     Link(apiRoot, kind, a.BuildID),
		Filename: SuggestedFilename(a),
		Size:     a.FileSize,
	}

	if a.UploadTimestamp != nil {
		d.Date = *a.UploadTimestamp
	} else {
		if now == nil {
			now = time.Now
		}
		d.Date = now()
		d.DateFallback = true
	}
	return d
}

// SuggestedFilename returns the artifact filename, else giraffecloud-{version}-{platform}
func SuggestedFilename(a models.Artifact) string {
	if name := strings.TrimSpace(a.Filename); name != "" {
		return name
	}
	platform := strings.ToLower(strings.TrimSpace(a.Platform))
	if platform == "" {
		return "giraffecloud-" + a.Version
	}
	return fmt.Sprintf("giraffecloud-%s-%s", a.Version, platform)
}

// SizeText formats the descriptor size for display
func (d Descriptor) SizeText() string {
	return FormatBytes(d.Size)
}
