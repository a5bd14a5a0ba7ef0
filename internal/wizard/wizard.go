// Package wizard implements the three-step download flow: choose a version,
// choose a platform, confirm and download. It owns its own unfiltered catalog
// fetch, separate from the catalog browsers.
package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/download"
	"github.com/osa911/giraffecloud-portal/internal/logging"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/safego"
)

// Step is the wizard position
type Step int

const (
	StepVersion  Step = 1
	StepPlatform Step = 2
	StepConfirm  Step = 3
)

func (s Step) String() string {
	switch s {
	case StepVersion:
		return "choose version"
	case StepPlatform:
		return "choose platform"
	case StepConfirm:
		return "confirm"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

const (
	DefaultResetDelay   = 300 * time.Millisecond
	DefaultExitDuration = 1500 * time.Millisecond
)

// Options configures a Wizard. Zero values fall back to defaults.
type Options struct {
	APIRoot      string
	Platforms    []string
	ResetDelay   time.Duration
	ExitDuration time.Duration
	Launcher     download.Launcher
	Scheduler    Scheduler
	Now          func() time.Time
}

// Selection is a snapshot of the wizard state
type Selection struct {
	Open        bool   `json:"open"`
	Step        Step   `json:"step"`
	Version     string `json:"version,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Downloading bool   `json:"downloading"`
}

// Wizard is the download state machine. It is safe for concurrent use.
type Wizard struct {
	store  *catalog.Store
	opts   Options
	logger *logging.Logger

	mu          sync.Mutex
	open        bool
	step        Step
	version     string
	platform    string
	downloading bool
	pending     Timer
	generation  uint64
}

// New creates a closed wizard backed by store
func New(store *catalog.Store, opts Options) *Wizard {
	if len(opts.Platforms) == 0 {
		opts.Platforms = DefaultPlatforms
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = DefaultResetDelay
	}
	if opts.ExitDuration <= 0 {
		opts.ExitDuration = DefaultExitDuration
	}
	if opts.Scheduler == nil {
		opts.Scheduler = realScheduler{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Launcher == nil {
		opts.Launcher = download.NewBrowserLauncher()
	}

	return &Wizard{
		store:  store,
		opts:   opts,
		logger: logging.GetGlobalLogger(),
		step:   StepVersion,
	}
}

// Open resets the wizard to step 1, cancelling any pending reset, and
// fetches a fresh catalog.
func (w *Wizard) Open(ctx context.Context) catalog.FetchResult {
	w.mu.Lock()
	w.cancelPendingLocked()
	w.resetLocked()
	w.open = true
	w.mu.Unlock()

	return w.store.Fetch(ctx, catalog.Query{})
}

// Close closes the wizard and resets it once the reset delay elapses.
// Closing is refused while a download is in progress.
func (w *Wizard) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.downloading {
		return ErrDownloading
	}
	if !w.open {
		return nil
	}

	w.open = false
	w.scheduleLocked(w.opts.ResetDelay, func() {
		w.resetLocked()
	})
	return nil
}

// Selection returns the current state
func (w *Wizard) Selection() Selection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Selection{
		Open:        w.open,
		Step:        w.step,
		Version:     w.version,
		Platform:    w.platform,
		Downloading: w.downloading,
	}
}

// Result returns the wizard's catalog fetch state
func (w *Wizard) Result() catalog.FetchResult {
	return w.store.Result()
}

// Versions lists the versions offered at step 1
func (w *Wizard) Versions() []string {
	return Versions(w.store.Result().Artifacts())
}

// PlatformOptions lists the candidate platforms for the selected version
func (w *Wizard) PlatformOptions() []PlatformOption {
	w.mu.Lock()
	version := w.version
	w.mu.Unlock()
	return PlatformOptions(w.store.Result().Artifacts(), version, w.opts.Platforms)
}

// SelectVersion moves from step 1 to step 2
func (w *Wizard) SelectVersion(version string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkLocked(StepVersion); err != nil {
		return err
	}
	if !HasVersion(w.store.Result().Artifacts(), version) {
		return fmt.Errorf("%w: %q", ErrUnknownVersion, version)
	}

	w.version = version
	w.step = StepPlatform
	return nil
}

// SelectPlatform moves from step 2 to step 3 when the platform has an
// artifact for the selected version. Otherwise the wizard stays at step 2.
func (w *Wizard) SelectPlatform(platform string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkLocked(StepPlatform); err != nil {
		return err
	}
	if !available(w.store.Result().Artifacts(), w.version, platform) {
		return fmt.Errorf("%w: %s %s", ErrPlatformUnavailable, w.version, platform)
	}

	w.platform = platform
	w.step = StepConfirm
	return nil
}

// Back returns to the previous step. The selected version is kept when
// going back to step 1.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return ErrClosed
	}
	if w.downloading {
		return ErrDownloading
	}

	switch w.step {
	case StepPlatform:
		w.step = StepVersion
	case StepConfirm:
		w.step = StepPlatform
	default:
		return ErrWrongStep
	}
	return nil
}

// Resolve builds the descriptor for the current selection at step 3. If the
// selection no longer matches an artifact the wizard drops back to step 2
// and ErrSelectionMismatch is returned.
func (w *Wizard) Resolve() (download.Descriptor, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkLocked(StepConfirm); err != nil {
		return download.Descriptor{}, err
	}
	return w.resolveLocked()
}

// Download initiates the download of the resolved artifact. The launcher
// runs in the background and its outcome is not awaited. After the exit
// duration the wizard closes and resets.
func (w *Wizard) Download(ctx context.Context) (download.Receipt, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkLocked(StepConfirm); err != nil {
		return download.Receipt{}, err
	}
	descriptor, err := w.resolveLocked()
	if err != nil {
		return download.Receipt{}, err
	}

	receipt := download.NewReceipt(descriptor)
	w.downloading = true

	launcher := w.opts.Launcher
	launchCtx := context.WithoutCancel(ctx)
	safego.Go(func() {
		if err := launcher.Launch(launchCtx, receipt); err != nil {
			w.logger.Error("Failed to launch download %s: %v", descriptor.Link, err)
		}
	})
	w.logger.Info("Download initiated: %s %s (%s)", descriptor.Version, descriptor.Platform, descriptor.Link)

	w.scheduleLocked(w.opts.ExitDuration, func() {
		w.open = false
		w.resetLocked()
	})
	return receipt, nil
}

func (w *Wizard) checkLocked(step Step) error {
	if !w.open {
		return ErrClosed
	}
	if w.downloading {
		return ErrDownloading
	}
	if w.step != step {
		return fmt.Errorf("%w: at %s", ErrWrongStep, w.step)
	}
	return nil
}

func (w *Wizard) resolveLocked() (download.Descriptor, error) {
	artifact, ok := Match(w.store.Result().Artifacts(), w.version, w.platform)
	if !ok {
		err := fmt.Errorf("%w: %s %s", ErrSelectionMismatch, w.version, w.platform)
		w.step = StepPlatform
		w.platform = ""
		return download.Descriptor{}, err
	}
	return download.Resolve(w.opts.APIRoot, models.KindRelease, artifact, w.opts.Now), nil
}

func (w *Wizard) resetLocked() {
	w.step = StepVersion
	w.version = ""
	w.platform = ""
	w.downloading = false
}

func (w *Wizard) cancelPendingLocked() {
	w.generation++
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
}

// scheduleLocked replaces any pending call with fn, run under the lock after d.
// A call superseded by a later schedule or Open does nothing.
func (w *Wizard) scheduleLocked(d time.Duration, fn func()) {
	w.cancelPendingLocked()
	gen := w.generation
	w.pending = w.opts.Scheduler.AfterFunc(d, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.generation != gen {
			return
		}
		w.pending = nil
		fn()
	})
}
