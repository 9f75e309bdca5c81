// Copyright BioCuration Labs, 2026. All rights reserved.

package triage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biocuration/preprint-triage/internal/annotate"
	"github.com/biocuration/preprint-triage/pkg/types"
)

// wordAnnotator splits on whitespace, standing in for the NLP pipeline.
type wordAnnotator struct{}

func (wordAnnotator) Annotate(text string) (annotate.Annotation, error) {
	var ann annotate.Annotation
	for i, f := range strings.Fields(text) {
		ann.Tokens = append(ann.Tokens, annotate.Token{Text: f, Index: i})
	}
	return ann, nil
}

// failingAnnotator errors on any text containing the trigger.
type failingAnnotator struct {
	trigger string
}

func (f failingAnnotator) Annotate(text string) (annotate.Annotation, error) {
	if strings.Contains(text, f.trigger) {
		return annotate.Annotation{}, errors.New("model failure")
	}
	return wordAnnotator{}.Annotate(text)
}

const testArchive = `{
  "rels": [
    {
      "rel_doi": "10.1101/2020.03.22.000001",
      "rel_title": "Receptor binding study",
      "rel_abs": "The spike protein binds to the ACE2 receptor complex",
      "rel_authors": [
        {"author_name": "John Michael Smith", "author_inst": "Example University"},
        {"author_name": "Ana Lima", "author_inst": "Example Institute"}
      ],
      "rel_date": "2020-03-22",
      "rel_site": "biorxiv",
      "rel_link": "https://www.biorxiv.org/content/10.1101/2020.03.22.000001",
      "rel_num_authors": 2
    },
    {
      "rel_doi": "10.1101/2020.04.05.000002",
      "rel_title": "ACE2 expression atlas",
      "rel_abs": "Tissue expression profiles",
      "rel_authors": [],
      "rel_date": "2020-04-05",
      "rel_site": "medrxiv",
      "rel_link": "https://www.medrxiv.org/content/10.1101/2020.04.05.000002",
      "rel_num_authors": 0
    },
    {
      "rel_doi": "10.1101/2020.05.01.000003",
      "rel_title": "Hospital outcomes",
      "rel_abs": "Retrospective cohort description",
      "rel_authors": [{"author_name": "Wei Chen", "author_inst": ""}],
      "rel_date": "2020-05-01",
      "rel_site": "medrxiv",
      "rel_link": "https://www.medrxiv.org/content/10.1101/2020.05.01.000003",
      "rel_num_authors": 1
    }
  ]
}`

func testConfig(t *testing.T, archiveContent string) types.Config {
	t.Helper()
	dir := t.TempDir()
	if archiveContent != "" {
		if err := os.WriteFile(filepath.Join(dir, "archive.json"), []byte(archiveContent), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := types.Default()
	cfg.Fetch.DownloadPath = dir
	cfg.Fetch.ArchiveFile = "archive.json"
	cfg.Terms = types.TermsConfig{
		High: types.TierConfig{Bounty: 10, Terms: []string{"ACE2"}},
		Med:  types.TierConfig{Bounty: 5, Terms: []string{"binding"}},
	}
	cfg.Report.OutputFile = filepath.Join(dir, "results.csv")
	cfg.Report.SummaryFile = filepath.Join(dir, "triage.csv")
	cfg.Report.ContextWindow = 2
	return cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return rows
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, testArchive)
	var out bytes.Buffer

	sum, err := Run(cfg, wordAnnotator{}, Options{}, &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if sum.Loaded != 3 || sum.Skipped != 0 {
		t.Errorf("Loaded/Skipped = %d/%d, want 3/0", sum.Loaded, sum.Skipped)
	}
	if sum.NoAuthors != 1 {
		t.Errorf("NoAuthors = %d, want 1", sum.NoAuthors)
	}
	if sum.Matched != 2 {
		t.Errorf("Matched = %d, want 2", sum.Matched)
	}
	if sum.Records != 4 {
		t.Errorf("Records = %d, want 4", sum.Records)
	}
	if sum.Documents != 2 {
		t.Errorf("Documents = %d, want 2", sum.Documents)
	}
	if sum.Total() != 3 || sum.HasFailures() {
		t.Errorf("Total()/HasFailures() = %d/%v", sum.Total(), sum.HasFailures())
	}

	results := readCSV(t, cfg.Report.OutputFile)
	if len(results) != 5 {
		t.Fatalf("results.csv has %d rows, want header + 4", len(results))
	}
	// First document: "binding" at the title, "binds" by stem, then ACE2.
	if results[1][1] != "binding" || results[2][1] != "binding" || results[3][1] != "ACE2" {
		t.Errorf("result terms = %q, %q, %q", results[1][1], results[2][1], results[3][1])
	}
	if !strings.Contains(results[3][2], "ACE2 receptor") {
		t.Errorf("ACE2 context = %q", results[3][2])
	}
	// The authorless document still produces match records.
	if results[4][0] != "10.1101/2020.04.05.000002" || results[4][1] != "ACE2" {
		t.Errorf("row 4 = %v", results[4])
	}

	summary := readCSV(t, cfg.Report.SummaryFile)
	if len(summary) != 3 {
		t.Fatalf("triage.csv has %d rows, want header + 2", len(summary))
	}
	first := summary[1]
	if first[0] != "10.1101/2020.03.22.000001" {
		t.Errorf("summary DOI = %q", first[0])
	}
	if first[1] != "Smith JM (2020)" {
		t.Errorf("summary AUTHOR_SHORT = %q", first[1])
	}
	if first[4] != "Smith JM|Lima A" {
		t.Errorf("summary AUTHORS = %q", first[4])
	}
	// high ace2(1)*10 + med bind(2)*5 + biorxiv 5.
	if first[8] != "25" {
		t.Errorf("summary DOC_SCORE = %q, want 25", first[8])
	}
	if first[9] != "ace2|bind" {
		t.Errorf("summary MATCHING_KEYWORDS = %q", first[9])
	}
	// The no-author document is absent; the no-match document scores zero.
	second := summary[2]
	if second[0] != "10.1101/2020.05.01.000003" || second[8] != "0" || second[9] != "" {
		t.Errorf("summary row 2 = %v", second)
	}
}

func TestRunIdempotent(t *testing.T) {
	cfg := testConfig(t, testArchive)
	var out bytes.Buffer

	if _, err := Run(cfg, wordAnnotator{}, Options{}, &out); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	firstResults, err := os.ReadFile(cfg.Report.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	firstSummary, err := os.ReadFile(cfg.Report.SummaryFile)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Run(cfg, wordAnnotator{}, Options{}, &out); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	secondResults, _ := os.ReadFile(cfg.Report.OutputFile)
	secondSummary, _ := os.ReadFile(cfg.Report.SummaryFile)

	if !bytes.Equal(firstResults, secondResults) {
		t.Error("results.csv differs between identical runs")
	}
	if !bytes.Equal(firstSummary, secondSummary) {
		t.Error("triage.csv differs between identical runs")
	}
}

func TestRunMissingArchive(t *testing.T) {
	cfg := testConfig(t, "")
	var out bytes.Buffer

	if _, err := Run(cfg, wordAnnotator{}, Options{}, &out); err == nil {
		t.Fatal("Run() error = nil, want load error")
	}
	if _, err := os.Stat(cfg.Report.OutputFile); !os.IsNotExist(err) {
		t.Error("aborted run wrote an output file")
	}
	if _, err := os.Stat(cfg.Report.SummaryFile); !os.IsNotExist(err) {
		t.Error("aborted run wrote a summary file")
	}
}

func TestRunAnnotationFailureSkips(t *testing.T) {
	cfg := testConfig(t, testArchive)
	var out bytes.Buffer

	sum, err := Run(cfg, failingAnnotator{trigger: "Hospital"}, Options{}, &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", sum.Skipped)
	}
	if sum.Documents != 1 {
		t.Errorf("Documents = %d, want 1", sum.Documents)
	}
	if !strings.Contains(out.String(), "warning: skipping 10.1101/2020.05.01.000003") {
		t.Errorf("output = %q, want skip warning", out.String())
	}
}

func TestRunLimit(t *testing.T) {
	cfg := testConfig(t, testArchive)
	var out bytes.Buffer

	sum, err := Run(cfg, wordAnnotator{}, Options{Limit: 1}, &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Records != 3 {
		t.Errorf("Records = %d, want 3 from the first document only", sum.Records)
	}
	if sum.Documents != 1 {
		t.Errorf("Documents = %d, want 1", sum.Documents)
	}
}

func TestRunMalformedEntriesSkipped(t *testing.T) {
	archive := `{
  "rels": [
    {"rel_doi": "10.1101/2020.1", "rel_title": "ACE2 study", "rel_abs": "text",
     "rel_authors": [{"author_name": "Wei Chen"}], "rel_date": "2020-03-01",
     "rel_site": "biorxiv", "rel_num_authors": 1},
    {"rel_doi": "10.1101/2020.2", "rel_num_authors": "not a number"}
  ]
}`
	cfg := testConfig(t, archive)
	var out bytes.Buffer

	sum, err := Run(cfg, wordAnnotator{}, Options{}, &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Loaded != 1 || sum.Skipped != 1 {
		t.Errorf("Loaded/Skipped = %d/%d, want 1/1", sum.Loaded, sum.Skipped)
	}
	if !sum.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if !strings.Contains(out.String(), "warning: skipping entry 1") {
		t.Errorf("output = %q, want skip warning", out.String())
	}
}
