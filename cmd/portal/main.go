package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/cli"
	"github.com/osa911/giraffecloud-portal/internal/config"
	"github.com/osa911/giraffecloud-portal/internal/logging"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/preferences"
	"github.com/osa911/giraffecloud-portal/internal/version"
)

var (
	logger *logging.Logger
	cfg    *config.Config
	prefs  *preferences.Store
)

func initLogger(level string) {
	logConfig := logging.DefaultConfig()
	logConfig.Level = level
	logConfig.Console = os.Stderr
	if cfg != nil && cfg.LogFile != "" {
		logConfig.File = cfg.LogFile
	}

	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger = logging.GetGlobalLogger()
}

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "GiraffeCloud download portal",
	Long: `Browse GiraffeCloud releases and dev builds and download the client
for your platform.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		initLogger(level)

		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			cli.DisableColor()
		}

		// Loaded once; later changes only happen through prefs toggle
		prefs, err = preferences.Load(cfg.PreferencesFile)
		if err != nil {
			logger.Warn("Failed to load preferences, using defaults: %v", err)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("GiraffeCloud portal version: %s\n", version.Info())
	},
}

// backgroundEffects reports the persisted flag, defaulting to on
func backgroundEffects() bool {
	return prefs == nil || prefs.BackgroundEffects()
}

// watchLoading shows a spinner while store is loading. With background
// effects turned off a static line is printed instead.
func watchLoading(store *catalog.Store, label string) {
	var s *spinner.Spinner
	if backgroundEffects() {
		s = spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " Loading " + label + "..."
	}

	store.Subscribe(func(r catalog.FetchResult) {
		switch r.State {
		case catalog.StateLoading:
			if s != nil {
				s.Start()
			} else {
				fmt.Fprintf(os.Stderr, "Loading %s...\n", label)
			}
		default:
			if s != nil {
				s.Stop()
			}
		}
	})
}

func newRenderer() *cli.Renderer {
	return cli.NewRenderer(os.Stdout, cfg.APIBase)
}

func newFetcher(kind models.Kind) catalog.Fetcher {
	return catalog.NewHTTPFetcher(catalog.CollectionEndpoint(cfg.APIBase, kind), cfg.HTTPTimeout)
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(releasesCmd)
	rootCmd.AddCommand(devbuildsCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	initCatalogCommands()
	initDownloadCommands()
	initUpdateCommands()
	initPrefsCommands()
	initConfigCommands()
}

func main() {
	defer func() {
		if logger != nil {
			logger.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("Error: %v", err)
		}
		os.Exit(1)
	}
}
