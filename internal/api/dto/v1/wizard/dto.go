package wizard

import "time"

// VersionsResponse lists the versions offered at the first step
type VersionsResponse struct {
	Versions []string `json:"versions"`
}

// PlatformOption is one candidate platform for a version
type PlatformOption struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
}

// PlatformsResponse lists the candidate platforms for a version
type PlatformsResponse struct {
	Version   string           `json:"version"`
	Platforms []PlatformOption `json:"platforms"`
}

// DescriptorRequest is the confirm step query
type DescriptorRequest struct {
	Version  string `form:"version" binding:"required,version"`
	Platform string `form:"platform" binding:"required,platform"`
}

// DescriptorResponse is the resolved download target
type DescriptorResponse struct {
	Version      string    `json:"version"`
	Platform     string    `json:"platform"`
	BuildID      int64     `json:"build_id"`
	Link         string    `json:"link"`
	Filename     string    `json:"filename"`
	Size         *int64    `json:"size"`
	SizeText     string    `json:"size_text"`
	Date         time.Time `json:"date"`
	DateFallback bool      `json:"date_fallback"`
}
