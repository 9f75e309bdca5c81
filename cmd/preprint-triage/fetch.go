package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/biocuration/preprint-triage/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the coronavirus collection archive",
	Long: `Fetch downloads the coronavirus collection archive when no local copy
exists. An existing archive is kept unless --force is set. A manifest
sidecar records the source URL, fetch time, size, and checksum.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Bool("force", false, "re-download even when a local archive exists")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	client := &http.Client{Timeout: cfg.Fetch.Timeout}
	_, err = fetch.Ensure(client, cfg.Fetch, force, os.Stdout)
	return err
}
