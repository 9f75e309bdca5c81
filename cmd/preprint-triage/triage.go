package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/biocuration/preprint-triage/internal/annotate"
	"github.com/biocuration/preprint-triage/internal/fetch"
	"github.com/biocuration/preprint-triage/internal/triage"
)

var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Scan preprints for interaction terms and score them",
	Long: `Triage runs the full pipeline: load the local collection archive,
annotate each title and abstract, match the configured interaction
terms, and write the match and summary CSV reports. With -d the archive
is downloaded fresh first; otherwise an existing local archive is
required.`,
	RunE: runTriage,
}

func init() {
	triageCmd.Flags().BoolP("download", "d", false, "download a fresh archive before processing")
	triageCmd.Flags().Int("limit", 0, "process at most N preprints (0 = all)")
	triageCmd.Flags().String("output", "", "match report path (overrides config)")
	triageCmd.Flags().String("summary", "", "summary report path (overrides config)")

	rootCmd.AddCommand(triageCmd)
}

func runTriage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	download, _ := cmd.Flags().GetBool("download")
	limit, _ := cmd.Flags().GetInt("limit")
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Report.OutputFile = output
	}
	if summary, _ := cmd.Flags().GetString("summary"); summary != "" {
		cfg.Report.SummaryFile = summary
	}

	if download {
		client := &http.Client{Timeout: cfg.Fetch.Timeout}
		if _, err := fetch.Ensure(client, cfg.Fetch, true, os.Stdout); err != nil {
			return err
		}
	} else if _, err := fetch.Require(cfg.Fetch); err != nil {
		return err
	}

	sum, err := triage.Run(cfg, annotate.NewProse(), triage.Options{Limit: limit}, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d records) and %s (%d documents)\n",
		cfg.Report.OutputFile, sum.Records, cfg.Report.SummaryFile, sum.Documents)
	return nil
}
