package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/download"
	"github.com/osa911/giraffecloud-portal/internal/models"
)

// manualScheduler fires timers only when Advance moves its clock past them
type manualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

type fakeFetcher struct {
	artifacts []models.Artifact
	err       error
}

func (f *fakeFetcher) Fetch(ctx context.Context, q catalog.Query) ([]models.Artifact, error) {
	return f.artifacts, f.err
}

type recordingLauncher struct {
	mu       sync.Mutex
	receipts []download.Receipt
	done     chan struct{}
}

func (l *recordingLauncher) Launch(ctx context.Context, r download.Receipt) error {
	l.mu.Lock()
	l.receipts = append(l.receipts, r)
	l.mu.Unlock()
	if l.done != nil {
		close(l.done)
	}
	return nil
}

func releaseArtifacts() []models.Artifact {
	return []models.Artifact{
		{Version: "1.20", Platform: "Windows", BuildID: 10},
		{Version: "1.20", Platform: "Linux", BuildID: 11},
		{Version: "1.3", Platform: "macOS", BuildID: 4},
		{Version: "1.3", Platform: "linux", BuildID: 5},
	}
}

func newWizard(t *testing.T, artifacts []models.Artifact) (*Wizard, *manualScheduler, *recordingLauncher) {
	t.Helper()
	sched := &manualScheduler{}
	launcher := &recordingLauncher{done: make(chan struct{})}
	store := catalog.NewStore(models.KindRelease, &fakeFetcher{artifacts: artifacts})
	w := New(store, Options{
		APIRoot:   "https://api.example.com",
		Scheduler: sched,
		Launcher:  launcher,
	})
	require.Equal(t, catalog.StateLoaded, w.Open(context.Background()).State)
	return w, sched, launcher
}

func TestWizardHappyPath(t *testing.T) {
	w, _, _ := newWizard(t, releaseArtifacts())

	assert.Equal(t, []string{"1.20", "1.3"}, w.Versions())
	assert.Equal(t, StepVersion, w.Selection().Step)

	require.NoError(t, w.SelectVersion("1.20"))
	assert.Equal(t, StepPlatform, w.Selection().Step)

	require.NoError(t, w.SelectPlatform("windows"))
	assert.Equal(t, StepConfirm, w.Selection().Step)

	d, err := w.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/release/download/10", d.Link)
	assert.Equal(t, "Windows", d.Platform)
}

func TestWizardBlocksUnavailablePlatform(t *testing.T) {
	w, _, _ := newWizard(t, releaseArtifacts())
	require.NoError(t, w.SelectVersion("1.20"))

	options := w.PlatformOptions()
	assert.Equal(t, []PlatformOption{
		{ID: "windows", Available: true},
		{ID: "macos", Available: false},
		{ID: "linux", Available: true},
	}, options)

	err := w.SelectPlatform("macos")
	assert.True(t, errors.Is(err, ErrPlatformUnavailable))

	sel := w.Selection()
	assert.Equal(t, StepPlatform, sel.Step)
	assert.Equal(t, "1.20", sel.Version)
	assert.Empty(t, sel.Platform)
}

func TestWizardRejectsUnknownVersionAndWrongStep(t *testing.T) {
	w, _, _ := newWizard(t, releaseArtifacts())

	assert.True(t, errors.Is(w.SelectVersion("9.9"), ErrUnknownVersion))
	assert.True(t, errors.Is(w.SelectPlatform("linux"), ErrWrongStep))
	assert.True(t, errors.Is(w.Back(), ErrWrongStep))

	_, err := w.Resolve()
	assert.True(t, errors.Is(err, ErrWrongStep))
}

func TestWizardBack(t *testing.T) {
	w, _, _ := newWizard(t, releaseArtifacts())
	require.NoError(t, w.SelectVersion("1.3"))
	require.NoError(t, w.SelectPlatform("LINUX"))

	require.NoError(t, w.Back())
	assert.Equal(t, StepPlatform, w.Selection().Step)

	require.NoError(t, w.Back())
	sel := w.Selection()
	assert.Equal(t, StepVersion, sel.Step)
	assert.Equal(t, "1.3", sel.Version)

	require.NoError(t, w.SelectVersion("1.20"))
	assert.Equal(t, "1.20", w.Selection().Version)
}

func TestWizardCloseResetsAfterDelay(t *testing.T) {
	for _, step := range []Step{StepPlatform, StepConfirm} {
		t.Run(step.String(), func(t *testing.T) {
			w, sched, _ := newWizard(t, releaseArtifacts())
			require.NoError(t, w.SelectVersion("1.20"))
			if step == StepConfirm {
				require.NoError(t, w.SelectPlatform("linux"))
			}

			require.NoError(t, w.Close())
			sel := w.Selection()
			assert.False(t, sel.Open)
			assert.Equal(t, step, sel.Step)

			sched.Advance(DefaultResetDelay - time.Millisecond)
			assert.Equal(t, step, w.Selection().Step)

			sched.Advance(time.Millisecond)
			assert.Equal(t, Selection{Step: StepVersion}, w.Selection())

			w.Open(context.Background())
			assert.Equal(t, Selection{Open: true, Step: StepVersion}, w.Selection())
		})
	}
}

func TestWizardReopenBeforeDelayResetsImmediately(t *testing.T) {
	w, sched, _ := newWizard(t, releaseArtifacts())
	require.NoError(t, w.SelectVersion("1.20"))
	require.NoError(t, w.Close())

	w.Open(context.Background())
	assert.Equal(t, Selection{Open: true, Step: StepVersion}, w.Selection())

	require.NoError(t, w.SelectVersion("1.3"))
	sched.Advance(time.Hour)
	sel := w.Selection()
	assert.Equal(t, StepPlatform, sel.Step)
	assert.Equal(t, "1.3", sel.Version)
}

func TestWizardClosedRejectsActions(t *testing.T) {
	store := catalog.NewStore(models.KindRelease, &fakeFetcher{artifacts: releaseArtifacts()})
	w := New(store, Options{Scheduler: &manualScheduler{}})

	assert.True(t, errors.Is(w.SelectVersion("1.20"), ErrClosed))
	assert.True(t, errors.Is(w.Back(), ErrClosed))
	assert.NoError(t, w.Close())
}

func TestWizardDownload(t *testing.T) {
	w, sched, launcher := newWizard(t, releaseArtifacts())
	require.NoError(t, w.SelectVersion("1.3"))
	require.NoError(t, w.SelectPlatform("macos"))

	receipt, err := w.Download(context.Background())
	require.NoError(t, err)
	assert.Equal(t, download.StatusInitiated, receipt.Status)
	assert.Equal(t, "https://api.example.com/release/download/4", receipt.Descriptor.Link)

	select {
	case <-launcher.done:
	case <-time.After(time.Second):
		t.Fatal("launcher was not invoked")
	}

	assert.True(t, w.Selection().Downloading)
	assert.True(t, errors.Is(w.Close(), ErrDownloading))
	assert.True(t, w.Selection().Open)

	_, err = w.Download(context.Background())
	assert.True(t, errors.Is(err, ErrDownloading))

	sched.Advance(DefaultExitDuration)
	assert.Equal(t, Selection{Step: StepVersion}, w.Selection())
}

func TestWizardSelectionMismatchReturnsToPlatformStep(t *testing.T) {
	fetcher := &fakeFetcher{artifacts: releaseArtifacts()}
	store := catalog.NewStore(models.KindRelease, fetcher)
	w := New(store, Options{Scheduler: &manualScheduler{}})
	w.Open(context.Background())

	require.NoError(t, w.SelectVersion("1.20"))
	require.NoError(t, w.SelectPlatform("windows"))

	// the catalog changes underneath the selection
	fetcher.artifacts = []models.Artifact{{Version: "1.20", Platform: "linux", BuildID: 1}}
	store.Fetch(context.Background(), catalog.Query{})

	_, err := w.Resolve()
	assert.True(t, errors.Is(err, ErrSelectionMismatch))

	sel := w.Selection()
	assert.Equal(t, StepPlatform, sel.Step)
	assert.Empty(t, sel.Platform)
}

func TestWizardFailedFetchOffersNothing(t *testing.T) {
	store := catalog.NewStore(models.KindRelease, &fakeFetcher{err: errors.New("offline")})
	w := New(store, Options{Scheduler: &manualScheduler{}})

	result := w.Open(context.Background())
	assert.Equal(t, catalog.StateFailed, result.State)
	assert.Empty(t, w.Versions())
}

func TestMatchPrefersHighestBuild(t *testing.T) {
	artifacts := []models.Artifact{
		{Version: "2.0", Platform: "linux", BuildID: 3},
		{Version: "2.0", Platform: "Linux", BuildID: 8},
		{Version: "2.0", Platform: "linux", BuildID: 5},
	}
	a, ok := Match(artifacts, "2.0", "LINUX")
	require.True(t, ok)
	assert.Equal(t, models.BuildID(8), a.BuildID)

	_, ok = Match(artifacts, "2.0.0", "linux")
	assert.False(t, ok)
}
