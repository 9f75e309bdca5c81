// Copyright BioCuration Labs, 2026. All rights reserved.

// Package report writes the triage CSV reports. Output is deterministic:
// the same records and scores always produce identical bytes.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/biocuration/preprint-triage/pkg/types"
)

// matchHeader is the column layout of the match report.
var matchHeader = []string{"document_id", "term", "context"}

// summaryHeader is the column layout of the triage summary, one row per
// scored document.
var summaryHeader = []string{
	"DOI", "AUTHOR_SHORT", "TITLE", "ABSTRACT", "AUTHORS",
	"DATE", "SOURCE", "LINK", "DOC_SCORE", "MATCHING_KEYWORDS",
}

// WriteMatches writes one row per match record to path, truncating any
// existing file.
func WriteMatches(path string, records []types.MatchRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.DocumentID, r.Term, r.Context})
	}
	return writeCSV(path, matchHeader, rows)
}

// WriteSummary writes one row per scored document to path, truncating
// any existing file. Authors and matched keywords are pipe-joined.
func WriteSummary(path string, scores []types.DocumentScore) error {
	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		doc := s.Document
		rows = append(rows, []string{
			doc.ID,
			s.Label,
			doc.Title,
			doc.Abstract,
			strings.Join(s.Authors, "|"),
			doc.Date,
			doc.Site,
			doc.Link,
			strconv.Itoa(s.Score),
			strings.Join(s.Keywords, "|"),
		})
	}
	return writeCSV(path, summaryHeader, rows)
}

// writeCSV writes header plus rows to path. The csv writer is flushed
// and the file closed on every path, with both errors checked, so a
// write failure is never silently swallowed.
func writeCSV(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
