package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/version"
)

// Kind distinguishes the two artifact collections served by the backend
type Kind string

const (
	KindRelease  Kind = "release"
	KindDevBuild Kind = "devbuild"
)

// Collection returns the collection path segment for the kind ("releases", "devbuilds")
func (k Kind) Collection() string {
	return string(k) + "s"
}

// Label returns a human-readable plural label
func (k Kind) Label() string {
	if k == KindDevBuild {
		return "dev builds"
	}
	return "releases"
}

// BuildID is the integer identity of an artifact within a version and platform.
// The backend sends it either as a JSON number or as a numeric string.
type BuildID int64

func (b *BuildID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid build_id %s: %w", string(data), err)
	}
	if n == "" {
		*b = 0
		return nil
	}
	id, err := n.Int64()
	if err != nil {
		return fmt.Errorf("invalid build_id %s: %w", string(data), err)
	}
	*b = BuildID(id)
	return nil
}

func (b BuildID) String() string {
	return strconv.FormatInt(int64(b), 10)
}

// Artifact is a single downloadable build record. Releases carry Changelog,
// Filename and FileSize; dev builds carry CommitHash, Author and CommitMessage.
type Artifact struct {
	Version  string  `json:"version"`
	Platform string  `json:"platform"`
	BuildID  BuildID `json:"build_id"`

	// Release fields
	Changelog string `json:"changelog,omitempty"`
	Filename  string `json:"filename,omitempty"`
	// FileSize is nil when the backend omitted the size or sent something unparseable.
	FileSize *int64 `json:"file_size,omitempty"`

	// Dev build fields
	CommitHash    string `json:"commit_hash,omitempty"`
	Author        string `json:"author,omitempty"`
	CommitMessage string `json:"commit_message,omitempty"`

	// UploadTimestamp is nil when the backend omitted it.
	UploadTimestamp *time.Time `json:"upload_timestamp,omitempty"`
}

// UnmarshalJSON accepts the legacy aliases "size" and "uploaded_at". The
// canonical name is checked first and the first non-empty value wins.
func (a *Artifact) UnmarshalJSON(data []byte) error {
	type plain Artifact
	var raw struct {
		plain
		FileSize        json.RawMessage `json:"file_size"`
		Size            json.RawMessage `json:"size"`
		UploadTimestamp json.RawMessage `json:"upload_timestamp"`
		UploadedAt      json.RawMessage `json:"uploaded_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = Artifact(raw.plain)
	a.FileSize = parseSize(firstNonEmpty(raw.FileSize, raw.Size))
	a.UploadTimestamp = parseTimestamp(firstNonEmpty(raw.UploadTimestamp, raw.UploadedAt))
	return nil
}

// ShortCommit returns the first 8 characters of the commit hash
func (a Artifact) ShortCommit() string {
	if len(a.CommitHash) <= 8 {
		return a.CommitHash
	}
	return a.CommitHash[:8]
}

// IsPrerelease reports whether the version carries a pre-release label
func (a Artifact) IsPrerelease() bool {
	return version.IsPrerelease(a.Version)
}

func firstNonEmpty(values ...json.RawMessage) json.RawMessage {
	for _, v := range values {
		trimmed := bytes.TrimSpace(v)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
			continue
		}
		return trimmed
	}
	return nil
}

func parseSize(raw json.RawMessage) *int64 {
	if raw == nil {
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || n == "" {
		return nil
	}

	size, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || f != math.Trunc(f) || f >= math.MaxInt64 {
			return nil
		}
		size = int64(f)
	}
	if size < 0 {
		return nil
	}
	return &size
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(raw json.RawMessage) *time.Time {
	if raw == nil {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
