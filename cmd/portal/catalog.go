package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/models"
)

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "List GiraffeCloud releases",
	Long: `List published GiraffeCloud releases, newest first.

Examples:
  portal releases                        # All releases
  portal releases --version 1.2.0        # One version, as /releases/1.2.0 would
  portal releases --platform Windows     # Only Windows artifacts`,
	Run: func(cmd *cobra.Command, args []string) {
		runCatalog(cmd, models.KindRelease)
	},
}

var devbuildsCmd = &cobra.Command{
	Use:   "devbuilds",
	Short: "List GiraffeCloud dev builds",
	Long: `List development builds, newest first. Dev builds are unstable and
meant for testing.

Examples:
  portal devbuilds --version 1.3 --build 7`,
	Run: func(cmd *cobra.Command, args []string) {
		runCatalog(cmd, models.KindDevBuild)
	},
}

// runCatalog fetches one collection and renders it. --version and --build
// become the fetch query; --platform filters what was fetched.
func runCatalog(cmd *cobra.Command, kind models.Kind) {
	versionFlag, _ := cmd.Flags().GetString("version")
	build, _ := cmd.Flags().GetString("build")
	platform, _ := cmd.Flags().GetString("platform")
	showChangelog, _ := cmd.Flags().GetBool("changelog")

	store := catalog.NewStore(kind, newFetcher(kind))
	watchLoading(store, kind.Label())

	query := catalog.Query{Version: versionFlag, BuildID: build}
	result := store.Fetch(context.Background(), query)

	// The route version also preselects the in-page version filter
	filter := catalog.Filter{Version: versionFlag, Platform: platform}

	renderer := newRenderer()
	renderer.Result(kind, result, filter)

	if result.State == catalog.StateFailed {
		os.Exit(1)
	}
	if showChangelog && kind == models.KindRelease {
		renderer.Changelog(catalog.Visible(result.Artifacts(), filter))
	}
}

func initCatalogCommands() {
	for _, cmd := range []*cobra.Command{releasesCmd, devbuildsCmd} {
		cmd.Flags().String("version", "", "Only fetch this version")
		cmd.Flags().String("build", "", "Only fetch this build id")
		cmd.Flags().String("platform", "", "Only show artifacts for this platform (exact match)")
	}
	releasesCmd.Flags().Bool("changelog", false, "Print the changelog of each listed release")
}
