package types

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// FetchConfig holds settings for downloading the preprint archive.
type FetchConfig struct {
	// SourceURL is the collection endpoint the archive is downloaded from.
	SourceURL string `mapstructure:"source_url" json:"source_url" yaml:"source_url" validate:"required,url"`

	// DownloadPath is the directory the archive is stored in.
	DownloadPath string `mapstructure:"download_path" json:"download_path" yaml:"download_path" validate:"required"`

	// ArchiveFile is the archive file name inside DownloadPath.
	ArchiveFile string `mapstructure:"archive_file" json:"archive_file" yaml:"archive_file" validate:"required"`

	// Timeout is the HTTP request timeout.
	Timeout time.Duration `mapstructure:"timeout" json:"timeout" yaml:"timeout" validate:"gt=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "preprint-triage/0.1").
	UserAgent string `mapstructure:"user_agent" json:"user_agent" yaml:"user_agent"`
}

// ArchivePath returns the full path of the local archive file.
func (c FetchConfig) ArchivePath() string {
	return filepath.Join(c.DownloadPath, c.ArchiveFile)
}

// TierConfig configures one tier of interaction terms. Terms come from a
// file (one term per line), an inline list, or both.
type TierConfig struct {
	// File is a path to a term file, one term per line.
	File string `mapstructure:"file" json:"file,omitempty" yaml:"file,omitempty"`

	// Bounty is the score multiplier applied to matches from this tier.
	Bounty int `mapstructure:"bounty" json:"bounty" yaml:"bounty" validate:"gte=0"`

	// Terms lists interaction terms configured inline, merged with File.
	Terms []string `mapstructure:"terms" json:"terms,omitempty" yaml:"terms,omitempty"`
}

// HasSources reports whether the tier configures any term source.
func (t TierConfig) HasSources() bool {
	return t.File != "" || len(t.Terms) > 0
}

// TermsConfig holds the three term tiers. The flat set of configured
// interaction terms is the union of all tiers.
type TermsConfig struct {
	High TierConfig `mapstructure:"high" json:"high" yaml:"high"`
	Med  TierConfig `mapstructure:"med" json:"med" yaml:"med"`
	Low  TierConfig `mapstructure:"low" json:"low" yaml:"low"`
}

// TierSpec pairs a tier name with its configuration, in matching order.
type TierSpec struct {
	Tier Tier
	TierConfig
}

// Tiers returns the tiers in matching and scoring order, highest first.
func (t TermsConfig) Tiers() []TierSpec {
	return []TierSpec{
		{Tier: TierHigh, TierConfig: t.High},
		{Tier: TierMed, TierConfig: t.Med},
		{Tier: TierLow, TierConfig: t.Low},
	}
}

// ReportConfig holds settings for the CSV reports.
type ReportConfig struct {
	// OutputFile is the match report path, one row per match record.
	OutputFile string `mapstructure:"output_file" json:"output_file" yaml:"output_file" validate:"required"`

	// SummaryFile is the per-document triage summary path.
	SummaryFile string `mapstructure:"summary_file" json:"summary_file" yaml:"summary_file" validate:"required"`

	// ContextWindow is the number of words kept on each side of a match
	// in the report context column.
	ContextWindow int `mapstructure:"context_window" json:"context_window" yaml:"context_window" validate:"gte=0"`
}

// Config groups all settings for a triage run.
type Config struct {
	Fetch FetchConfig `mapstructure:"fetch" json:"fetch" yaml:"fetch"`
	Terms TermsConfig `mapstructure:"terms" json:"terms" yaml:"terms"`

	// BiorxivBounty is added to a document's score when it was posted on
	// the bioRxiv site (as opposed to medRxiv).
	BiorxivBounty int `mapstructure:"biorxiv_bounty" json:"biorxiv_bounty" yaml:"biorxiv_bounty" validate:"gte=0"`

	Report ReportConfig `mapstructure:"report" json:"report" yaml:"report"`
}

// Validate checks the configuration before any work starts. It returns
// the first structural problem found, or an error listing missing term
// sources when no tier configures any.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if !c.Terms.High.HasSources() && !c.Terms.Med.HasSources() && !c.Terms.Low.HasSources() {
		return fmt.Errorf("terms: at least one tier must configure a term file or inline terms")
	}
	return nil
}

// Default returns the configuration used when no config file overrides it.
func Default() Config {
	return Config{
		Fetch: FetchConfig{
			SourceURL:    "https://connect.biorxiv.org/relate/collection_json.php?grp=181",
			DownloadPath: "data",
			ArchiveFile:  "biorxiv-covid19.json",
			Timeout:      60 * time.Second,
			UserAgent:    "preprint-triage/0.1",
		},
		Terms: TermsConfig{
			High: TierConfig{File: filepath.Join("config", "terms", "high.txt"), Bounty: 10},
			Med:  TierConfig{File: filepath.Join("config", "terms", "med.txt"), Bounty: 5},
			Low:  TierConfig{File: filepath.Join("config", "terms", "low.txt"), Bounty: 1},
		},
		BiorxivBounty: 5,
		Report: ReportConfig{
			OutputFile:    filepath.Join("data", "results.csv"),
			SummaryFile:   filepath.Join("data", "triage.csv"),
			ContextWindow: 5,
		},
	}
}
