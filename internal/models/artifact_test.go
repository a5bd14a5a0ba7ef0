package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactUnmarshalRelease(t *testing.T) {
	data := `{
		"version": "1.2.0",
		"platform": "Windows",
		"build_id": 42,
		"changelog": "Fixes",
		"filename": "giraffecloud-1.2.0.exe",
		"file_size": 1048576,
		"upload_timestamp": "2026-03-01T10:00:00Z"
	}`

	var a Artifact
	require.NoError(t, json.Unmarshal([]byte(data), &a))

	assert.Equal(t, "1.2.0", a.Version)
	assert.Equal(t, "Windows", a.Platform)
	assert.Equal(t, BuildID(42), a.BuildID)
	assert.Equal(t, "Fixes", a.Changelog)
	require.NotNil(t, a.FileSize)
	assert.Equal(t, int64(1048576), *a.FileSize)
	require.NotNil(t, a.UploadTimestamp)
	assert.True(t, a.UploadTimestamp.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestArtifactUnmarshalDevBuild(t *testing.T) {
	data := `{
		"version": "1.3",
		"build_id": "7",
		"commit_hash": "deadbeefcafebabe",
		"author": "sam",
		"commit_message": "Tune pool",
		"platform": "linux"
	}`

	var a Artifact
	require.NoError(t, json.Unmarshal([]byte(data), &a))

	assert.Equal(t, BuildID(7), a.BuildID)
	assert.Equal(t, "deadbeef", a.ShortCommit())
	assert.Equal(t, "sam", a.Author)
	assert.Nil(t, a.FileSize)
	assert.Nil(t, a.UploadTimestamp)
}

func TestArtifactUnmarshalAliases(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantSize *int64
		wantDate bool
	}{
		{"legacy size alias", `{"size": 2048, "uploaded_at": "2026-01-01T00:00:00Z"}`, int64Ptr(2048), true},
		{"canonical wins", `{"file_size": 1, "size": 2}`, int64Ptr(1), false},
		{"empty canonical falls through", `{"file_size": "", "size": "512"}`, int64Ptr(512), false},
		{"null canonical falls through", `{"file_size": null, "size": 7}`, int64Ptr(7), false},
		{"numeric string", `{"file_size": "300"}`, int64Ptr(300), false},
		{"integral float", `{"file_size": 1024.0}`, int64Ptr(1024), false},
		{"real zero", `{"file_size": 0}`, int64Ptr(0), false},
		{"unparseable", `{"file_size": "big"}`, nil, false},
		{"negative", `{"file_size": -5}`, nil, false},
		{"missing", `{}`, nil, false},
		{"bad timestamp", `{"upload_timestamp": "yesterday"}`, nil, false},
		{"date only", `{"upload_timestamp": "2026-02-03"}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Artifact
			require.NoError(t, json.Unmarshal([]byte(tt.data), &a))
			assert.Equal(t, tt.wantSize, a.FileSize)
			assert.Equal(t, tt.wantDate, a.UploadTimestamp != nil)
		})
	}
}

func TestBuildIDAcceptsString(t *testing.T) {
	var a Artifact
	require.NoError(t, json.Unmarshal([]byte(`{"build_id": "17"}`), &a))
	assert.Equal(t, BuildID(17), a.BuildID)
	assert.Equal(t, "17", a.BuildID.String())

	err := json.Unmarshal([]byte(`{"build_id": "seventeen"}`), &a)
	assert.Error(t, err)
}

func TestArtifactIsPrerelease(t *testing.T) {
	assert.True(t, Artifact{Version: "2.0.0-beta.1"}.IsPrerelease())
	assert.False(t, Artifact{Version: "2.0.0"}.IsPrerelease())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "releases", KindRelease.Collection())
	assert.Equal(t, "devbuilds", KindDevBuild.Collection())
	assert.Equal(t, "dev builds", KindDevBuild.Label())
	assert.Equal(t, "releases", KindRelease.Label())
}

func int64Ptr(v int64) *int64 {
	return &v
}
