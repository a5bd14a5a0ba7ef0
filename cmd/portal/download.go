package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/cli"
	"github.com/osa911/giraffecloud-portal/internal/download"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/wizard"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the GiraffeCloud client",
	Long: `Choose a version and a platform and download the GiraffeCloud client.
Without --version and --platform an interactive wizard is started.

Examples:
  portal download                                  # Interactive wizard
  portal download --version 1.2.0 --platform linux # Open the download link in the browser
  portal download --version 1.2.0 --platform linux --out ./dist`,
	Run: func(cmd *cobra.Command, args []string) {
		versionFlag, _ := cmd.Flags().GetString("version")
		platform, _ := cmd.Flags().GetString("platform")
		outDir, _ := cmd.Flags().GetString("out")
		browser, _ := cmd.Flags().GetBool("browser")

		if browser && outDir != "" {
			logger.Error("--browser and --out cannot be used together")
			os.Exit(1)
		}
		if (versionFlag == "") != (platform == "") {
			logger.Error("--version and --platform must be given together")
			os.Exit(1)
		}

		launcher, completed := newLauncher(outDir)
		tracked := &trackingLauncher{next: launcher, done: make(chan error, 1)}

		w := newWizard(tracked)
		ctx := context.Background()
		w.Open(ctx)

		renderer := newRenderer()
		var err error
		if versionFlag != "" {
			_, err = downloadSelection(ctx, w, renderer, versionFlag, platform)
		} else {
			_, err = cli.RunWizard(ctx, w, cli.NewPrompter(os.Stdin, os.Stdout), renderer)
		}
		if errors.Is(err, cli.ErrAborted) {
			fmt.Println("Download cancelled")
			return
		}
		if err != nil {
			logger.Error("Download failed: %v", err)
			os.Exit(1)
		}

		if err := <-tracked.done; err != nil {
			logger.Error("Failed to start download: %v", err)
			os.Exit(1)
		}
		if completed == nil {
			return
		}

		var s *spinner.Spinner
		if backgroundEffects() {
			s = spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(os.Stderr))
			s.Suffix = " Downloading..."
			s.Start()
		}
		res := <-completed
		if s != nil {
			s.Stop()
		}
		if res.err != nil {
			logger.Error("Download failed: %v", res.err)
			os.Exit(1)
		}
		renderer.Receipt(res.receipt)
		fmt.Printf("Saved to %s\n", res.path)
	},
}

type fileResult struct {
	receipt download.Receipt
	path    string
	err     error
}

// trackingLauncher reports when the wrapped launcher has returned, so the
// process does not exit before the download was handed off.
type trackingLauncher struct {
	next download.Launcher
	done chan error
}

func (t *trackingLauncher) Launch(ctx context.Context, r download.Receipt) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("launcher panicked: %v", p)
		}
		t.done <- err
	}()
	return t.next.Launch(ctx, r)
}

// newLauncher opens the browser by default. With outDir the file is
// streamed to disk and the returned channel receives the outcome.
func newLauncher(outDir string) (download.Launcher, <-chan fileResult) {
	if outDir == "" {
		return download.NewBrowserLauncher(), nil
	}

	completed := make(chan fileResult, 1)
	fl := download.NewFileLauncher(outDir, 0)
	fl.OnConfirmed = func(r download.Receipt, path string) {
		completed <- fileResult{receipt: r, path: path}
	}
	fl.OnFailed = func(r download.Receipt, err error) {
		completed <- fileResult{receipt: r, err: err}
	}
	return fl, completed
}

func newWizard(launcher download.Launcher) *wizard.Wizard {
	store := catalog.NewStore(models.KindRelease, catalog.NewHTTPFetcher(cfg.WizardURL, cfg.HTTPTimeout))
	watchLoading(store, models.KindRelease.Label())

	return wizard.New(store, wizard.Options{
		APIRoot:      cfg.APIBase,
		Platforms:    cfg.WizardPlatforms,
		ResetDelay:   cfg.WizardResetDelay,
		ExitDuration: cfg.WizardExitDuration,
		Launcher:     launcher,
	})
}

// downloadSelection walks the wizard with a preset version and platform
func downloadSelection(ctx context.Context, w *wizard.Wizard, r *cli.Renderer, version, platform string) (download.Receipt, error) {
	result := w.Result()
	if result.State == catalog.StateFailed {
		r.Failure(models.KindRelease, result.Reason)
		return download.Receipt{}, errors.New(result.Reason)
	}

	if err := w.SelectVersion(version); err != nil {
		return download.Receipt{}, err
	}
	if err := w.SelectPlatform(platform); err != nil {
		return download.Receipt{}, err
	}

	descriptor, err := w.Resolve()
	if err != nil {
		return download.Receipt{}, err
	}
	r.Descriptor(descriptor)

	receipt, err := w.Download(ctx)
	if err != nil {
		return download.Receipt{}, err
	}
	r.Receipt(receipt)
	return receipt, nil
}

func initDownloadCommands() {
	downloadCmd.Flags().String("version", "", "Version to download")
	downloadCmd.Flags().String("platform", "", "Platform to download (windows, macos, linux)")
	downloadCmd.Flags().Bool("browser", false, "Open the download link in the browser (default)")
	downloadCmd.Flags().String("out", "", "Save the file into this directory instead of opening the browser")
}
