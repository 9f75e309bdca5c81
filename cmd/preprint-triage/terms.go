// Copyright BioCuration Labs, 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/biocuration/preprint-triage/internal/match"
)

var termsJSON bool

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Show the compiled interaction term set",
	Long: `Terms compiles the configured interaction terms and prints each term
with its tier and scoring stems. Useful for checking term files before a run.`,
	RunE: runTerms,
}

func init() {
	rootCmd.AddCommand(termsCmd)
	termsCmd.Flags().BoolVar(&termsJSON, "json", false, "print terms as JSON")
}

func runTerms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	set, err := match.Compile(cfg.Terms)
	if err != nil {
		return err
	}
	if termsJSON {
		return match.FormatJSON(set, os.Stdout)
	}
	match.FormatTable(set, os.Stdout)
	return nil
}
