package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/biocuration/preprint-triage/internal/corpus"
	"github.com/biocuration/preprint-triage/internal/fetch"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the local collection archive",
	Long: `Inspect loads the local archive and prints corpus statistics: entry
counts, per-site counts, and the posting date range. No network access.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := fetch.Require(cfg.Fetch)
	if err != nil {
		return err
	}

	col, err := corpus.Load(path, os.Stdout)
	if err != nil {
		return err
	}
	stats := col.Stats()

	fmt.Printf("archive: %s\n", path)
	if m, err := fetch.ReadManifest(path); err == nil {
		fmt.Printf("fetched: %s from %s (%d bytes)\n",
			m.FetchedAt.Format(time.RFC3339), m.SourceURL, m.SizeBytes)
	}
	fmt.Printf("entries: %d loaded, %d skipped\n", stats.Loaded, stats.Skipped)

	sites := make([]string, 0, len(stats.Sites))
	for site := range stats.Sites {
		sites = append(sites, site)
	}
	sort.Strings(sites)
	for _, site := range sites {
		fmt.Printf("  %-8s %d\n", site, stats.Sites[site])
	}

	if stats.FirstDate != "" {
		fmt.Printf("dates:   %s .. %s\n", stats.FirstDate, stats.LastDate)
	}
	fmt.Printf("authors: %d preprints without authors\n", stats.NoAuthors)
	return nil
}
