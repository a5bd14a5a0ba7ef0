package main

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/config"
	"github.com/osa911/giraffecloud-portal/internal/download"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/preferences"
	"github.com/osa911/giraffecloud-portal/internal/wizard"
)

type staticFetcher []models.Artifact

func (f staticFetcher) Fetch(ctx context.Context, q catalog.Query) ([]models.Artifact, error) {
	return f, nil
}

type errLauncher struct{ err error }

func (l errLauncher) Launch(ctx context.Context, r download.Receipt) error { return l.err }

func TestLatestFor(t *testing.T) {
	store := catalog.NewStore(models.KindRelease, staticFetcher{
		{Version: "1.20", Platform: "Windows", BuildID: 10},
		{Version: "1.3", Platform: "linux", BuildID: 5},
		{Version: "1.9", Platform: "Linux", BuildID: 6},
	})
	w := wizard.New(store, wizard.Options{Launcher: errLauncher{}})
	w.Open(context.Background())

	tests := []struct {
		platform string
		want     string
		ok       bool
	}{
		{"windows", "1.20", true},
		{"linux", "1.9", true},
		{"macos", "", false},
	}
	for _, tt := range tests {
		got, ok := latestFor(w, tt.platform)
		assert.Equal(t, tt.ok, ok, tt.platform)
		assert.Equal(t, tt.want, got, tt.platform)
	}
}

func TestHostPlatform(t *testing.T) {
	if runtime.GOOS == "darwin" {
		assert.Equal(t, "macos", hostPlatform())
	} else {
		assert.Equal(t, runtime.GOOS, hostPlatform())
	}
}

func TestTrackingLauncherReportsOutcome(t *testing.T) {
	boom := errors.New("no opener")
	tracked := &trackingLauncher{next: errLauncher{err: boom}, done: make(chan error, 1)}

	err := tracked.Launch(context.Background(), download.Receipt{})
	assert.ErrorIs(t, err, boom)
	require.Len(t, tracked.done, 1)
	assert.ErrorIs(t, <-tracked.done, boom)
}

type panicLauncher struct{}

func (panicLauncher) Launch(ctx context.Context, r download.Receipt) error { panic("opener crashed") }

func TestTrackingLauncherReportsPanic(t *testing.T) {
	tracked := &trackingLauncher{next: panicLauncher{}, done: make(chan error, 1)}

	err := tracked.Launch(context.Background(), download.Receipt{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opener crashed")
	require.Len(t, tracked.done, 1)
	assert.Error(t, <-tracked.done)
}

func TestNewLauncher(t *testing.T) {
	l, completed := newLauncher("")
	assert.IsType(t, &download.BrowserLauncher{}, l)
	assert.Nil(t, completed)

	l, completed = newLauncher(t.TempDir())
	assert.IsType(t, &download.FileLauncher{}, l)
	assert.NotNil(t, completed)
}

func TestPreferencesPathIsExpanded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	oldCfg, oldPrefs := cfg, prefs
	t.Cleanup(func() { cfg, prefs = oldCfg, oldPrefs })

	cfg = &config.Config{PreferencesFile: "~/.giraffecloud-portal/prefs.json"}
	loaded, err := preferences.Load(cfg.PreferencesFile)
	require.NoError(t, err)
	prefs = loaded
	assert.Equal(t, filepath.Join(home, ".giraffecloud-portal", "prefs.json"), preferencesPath())

	cfg = &config.Config{}
	prefs = nil
	assert.Equal(t, filepath.Join(home, ".giraffecloud-portal", "preferences.json"), preferencesPath())
}
