package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/cli"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/version"
	"github.com/osa911/giraffecloud-portal/internal/wizard"
)

// updateCmd compares this build with the newest release for the host platform
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer GiraffeCloud release",
	Long: `Check whether a newer release exists for this platform and offer to
download it.

Examples:
  portal update                 # Check and ask before downloading
  portal update --check-only    # Only check for updates`,
	Run: func(cmd *cobra.Command, args []string) {
		checkOnly, _ := cmd.Flags().GetBool("check-only")
		outDir, _ := cmd.Flags().GetString("out")

		launcher, completed := newLauncher(outDir)
		tracked := &trackingLauncher{next: launcher, done: make(chan error, 1)}
		w := newWizard(tracked)

		ctx := context.Background()
		result := w.Open(ctx)
		if result.State == catalog.StateFailed {
			newRenderer().Failure(models.KindRelease, result.Reason)
			os.Exit(1)
		}

		platform := hostPlatform()
		latest, ok := latestFor(w, platform)
		if !ok {
			fmt.Printf("No releases found for %s\n", platform)
			return
		}

		current := version.Version
		if current != "dev" && version.Compare(latest, current) <= 0 {
			fmt.Printf("✅ You are already running the latest version: %s\n", current)
			return
		}

		fmt.Println("🆕 Update available!")
		fmt.Printf("   Current version: %s\n", current)
		fmt.Printf("   Latest version:  %s\n", latest)
		if checkOnly {
			fmt.Println("Use 'portal update' to download the update")
			return
		}

		renderer := newRenderer()
		prompter := cli.NewPrompter(os.Stdin, os.Stdout)
		if err := w.SelectVersion(latest); err != nil {
			logger.Error("Failed to select %s: %v", latest, err)
			os.Exit(1)
		}
		if err := w.SelectPlatform(platform); err != nil {
			logger.Error("Failed to select %s: %v", platform, err)
			os.Exit(1)
		}
		descriptor, err := w.Resolve()
		if err != nil {
			logger.Error("Failed to resolve download: %v", err)
			os.Exit(1)
		}
		renderer.Descriptor(descriptor)

		answer, err := prompter.Confirm("Download this update?")
		if err != nil || answer != cli.AnswerChoice {
			w.Close()
			fmt.Println("Update cancelled")
			return
		}

		receipt, err := w.Download(ctx)
		if err != nil {
			logger.Error("Failed to start download: %v", err)
			os.Exit(1)
		}
		renderer.Receipt(receipt)

		if err := <-tracked.done; err != nil {
			logger.Error("Failed to start download: %v", err)
			os.Exit(1)
		}
		if completed != nil {
			res := <-completed
			if res.err != nil {
				logger.Error("Download failed: %v", res.err)
				os.Exit(1)
			}
			renderer.Receipt(res.receipt)
			fmt.Printf("Saved to %s\n", res.path)
		}
	},
}

// hostPlatform maps GOOS onto the wizard's platform ids
func hostPlatform() string {
	switch runtime.GOOS {
	case "darwin":
		return "macos"
	default:
		return runtime.GOOS
	}
}

// latestFor returns the newest version that has an artifact for platform
func latestFor(w *wizard.Wizard, platform string) (string, bool) {
	artifacts := w.Result().Artifacts()
	for _, v := range wizard.Versions(artifacts) {
		if _, ok := wizard.Match(artifacts, v, platform); ok {
			return v, true
		}
	}
	return "", false
}

func initUpdateCommands() {
	updateCmd.Flags().Bool("check-only", false, "Only check for updates, don't download")
	updateCmd.Flags().String("out", "", "Save the update into this directory instead of opening the browser")
}
