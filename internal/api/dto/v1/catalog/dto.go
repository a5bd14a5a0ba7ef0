package catalog

import "time"

// ArtifactResponse is one artifact in a catalog listing
type ArtifactResponse struct {
	Version       string     `json:"version"`
	Platform      string     `json:"platform"`
	BuildID       int64      `json:"build_id"`
	Prerelease    bool       `json:"prerelease"`
	Changelog     string     `json:"changelog,omitempty"`
	Filename      string     `json:"filename,omitempty"`
	FileSize      *int64     `json:"file_size"`
	SizeText      string     `json:"size_text"`
	CommitHash    string     `json:"commit_hash,omitempty"`
	ShortCommit   string     `json:"short_commit,omitempty"`
	Author        string     `json:"author,omitempty"`
	CommitMessage string     `json:"commit_message,omitempty"`
	UploadedAt    *time.Time `json:"upload_timestamp,omitempty"`
	DownloadURL   string     `json:"download_url"`
}

// QueryResponse echoes the route-derived filters
type QueryResponse struct {
	Version  string `json:"version,omitempty"`
	BuildID  string `json:"build_id,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// Response is a catalog view: the fetch state plus the derived lists
type Response struct {
	Kind               string             `json:"kind"`
	State              string             `json:"state"`
	Query              QueryResponse      `json:"query"`
	AvailableVersions  []string           `json:"available_versions"`
	AvailablePlatforms []string           `json:"available_platforms"`
	Items              []ArtifactResponse `json:"items"`
	EmptyHint          string             `json:"empty_hint"`
	EmptyMessage       string             `json:"empty_message,omitempty"`
}
