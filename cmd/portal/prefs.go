package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osa911/giraffecloud-portal/internal/preferences"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage portal preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored preferences",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Preferences file: %s\n", preferencesPath())
		fmt.Printf("%s: %s\n", preferences.BackgroundEffectsKey, onOff(backgroundEffects()))
	},
}

var prefsToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle background effects (animated spinners)",
	Run: func(cmd *cobra.Command, args []string) {
		if prefs == nil {
			logger.Error("Preferences are unavailable, check %s", preferencesPath())
			os.Exit(1)
		}

		enabled, err := prefs.ToggleBackgroundEffects()
		if err != nil {
			logger.Error("Failed to save preferences: %v", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", preferences.BackgroundEffectsKey, onOff(enabled))
	},
}

// preferencesPath returns the resolved file when preferences loaded, else the configured value
func preferencesPath() string {
	if prefs != nil {
		return prefs.Path()
	}
	if cfg.PreferencesFile == "" {
		if path, err := preferences.DefaultPath(); err == nil {
			return path
		}
	}
	return cfg.PreferencesFile
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func initPrefsCommands() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsToggleCmd)
}
