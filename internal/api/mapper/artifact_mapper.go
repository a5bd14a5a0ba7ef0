package mapper

import (
	catalogdto "github.com/osa911/giraffecloud-portal/internal/api/dto/v1/catalog"
	wizarddto "github.com/osa911/giraffecloud-portal/internal/api/dto/v1/wizard"
	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/download"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/wizard"
)

// ArtifactToResponse converts an Artifact to its listing DTO
func ArtifactToResponse(a models.Artifact, kind models.Kind, apiRoot string) catalogdto.ArtifactResponse {
	return catalogdto.ArtifactResponse{
		Version:       a.Version,
		Platform:      a.Platform,
		BuildID:       int64(a.BuildID),
		Prerelease:    a.IsPrerelease(),
		Changelog:     a.Changelog,
		Filename:      a.Filename,
		FileSize:      a.FileSize,
		SizeText:      download.FormatBytes(a.FileSize),
		CommitHash:    a.CommitHash,
		ShortCommit:   a.ShortCommit(),
		Author:        a.Author,
		CommitMessage: a.CommitMessage,
		UploadedAt:    a.UploadTimestamp,
		DownloadURL:   download.Link(apiRoot, kind, a.BuildID),
	}
}

// ViewToResponse converts a derived catalog view to the listing DTO
func ViewToResponse(c catalog.Catalog, f catalog.Filter, view catalog.View, apiRoot string) catalogdto.Response {
	items := make([]catalogdto.ArtifactResponse, len(view.Items))
	for i, a := range view.Items {
		items[i] = ArtifactToResponse(a, c.Kind(), apiRoot)
	}

	return catalogdto.Response{
		Kind:  c.Kind().Collection(),
		State: catalog.StateLoaded.String(),
		Query: catalogdto.QueryResponse{
			Version:  c.Query().Version,
			BuildID:  c.Query().BuildID,
			Platform: f.Platform,
		},
		AvailableVersions:  view.Versions,
		AvailablePlatforms: view.Platforms,
		Items:              items,
		EmptyHint:          view.Hint.String(),
		EmptyMessage:       view.Hint.Message(c.Kind()),
	}
}

// PlatformOptionsToResponse converts wizard platform options to the DTO
func PlatformOptionsToResponse(version string, options []wizard.PlatformOption) wizarddto.PlatformsResponse {
	result := make([]wizarddto.PlatformOption, len(options))
	for i, o := range options {
		result[i] = wizarddto.PlatformOption{ID: o.ID, Available: o.Available}
	}
	return wizarddto.PlatformsResponse{Version: version, Platforms: result}
}

// DescriptorToResponse converts a resolved descriptor to the DTO
func DescriptorToResponse(d download.Descriptor) wizarddto.DescriptorResponse {
	return wizarddto.DescriptorResponse{
		Version:      d.Version,
		Platform:     d.Platform,
		BuildID:      int64(d.BuildID),
		Link:         d.Link,
		Filename:     d.Filename,
		Size:         d.Size,
		SizeText:     d.SizeText(),
		Date:         d.Date,
		DateFallback: d.DateFallback,
	}
}
