// Copyright BioCuration Labs, 2026. All rights reserved.

// Package main is the entry point for the preprint-triage CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biocuration/preprint-triage/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the preprint-triage CLI.
var rootCmd = &cobra.Command{
	Use:   "preprint-triage",
	Short: "Triage coronavirus preprints for curation",
	Long: `preprint-triage downloads the bioRxiv/medRxiv coronavirus preprint
collection and scans each title and abstract for configured biological
interaction terms. Matches and weighted per-document scores land in CSV
reports curators use to pick candidates for curation.

Each pipeline stage is a subcommand: fetch downloads the collection
archive, triage runs the full scan, inspect summarizes a local archive,
and terms shows the compiled term sets.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./preprint-triage.yaml or ~/.config/preprint-triage/config.yaml)")
}

// cfgReadErr holds a config file failure caught during initialization;
// loadConfig surfaces it before any stage does work.
var cfgReadErr error

func initConfig() {
	cfgReadErr = nil

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("preprint-triage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "preprint-triage"))
		}
	}

	viper.SetEnvPrefix("PREPRINT_TRIAGE")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		return
	}

	// A missing config file is only tolerated when no explicit --config
	// was given. Any other failure must abort instead of letting a run
	// proceed on the built-in defaults.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return
	}
	cfgReadErr = fmt.Errorf("reading config file: %w", err)
}

// loadConfig merges the config file over the defaults and validates the
// result. Configuration problems are fatal before any work starts.
func loadConfig() (types.Config, error) {
	if cfgReadErr != nil {
		return types.Config{}, cfgReadErr
	}

	cfg := types.Default()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
