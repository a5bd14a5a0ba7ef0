package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgenv "github.com/osa911/giraffecloud-portal/internal/config/env"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect portal configuration",
	Long:  `View the effective portal configuration and where it is read from.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file paths",
	Long:  `Display the .env files that are consulted and the preferences file.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range cfgenv.Locations() {
			status := "missing"
			if _, err := os.Stat(path); err == nil {
				status = "found"
			}
			fmt.Printf("Env file:         %s (%s)\n", path, status)
		}
		fmt.Printf("Preferences file: %s\n", preferencesPath())
		if cfg.LogFile != "" {
			fmt.Printf("Log file:         %s\n", cfg.LogFile)
		}
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective portal configuration in JSON format.`,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			logger.Error("Failed to marshal config: %v", err)
			os.Exit(1)
		}

		fmt.Println(string(data))
	},
}

// initConfigCommands sets up all config-related commands
func initConfigCommands() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
