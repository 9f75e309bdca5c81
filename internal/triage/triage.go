// Copyright BioCuration Labs, 2026. All rights reserved.

// Package triage runs the full scan pipeline over a local archive:
// load, annotate, match, score, report.
package triage

import (
	"fmt"
	"io"

	"github.com/biocuration/preprint-triage/internal/annotate"
	"github.com/biocuration/preprint-triage/internal/corpus"
	"github.com/biocuration/preprint-triage/internal/match"
	"github.com/biocuration/preprint-triage/internal/report"
	"github.com/biocuration/preprint-triage/pkg/types"
)

// Options tune a triage run.
type Options struct {
	// Limit caps the number of documents processed, 0 meaning all.
	Limit int
}

// Summary holds the outcome of a triage run.
type Summary struct {
	// Loaded is the number of documents loaded from the archive.
	Loaded int

	// Skipped counts archive entries and documents dropped along the
	// way, whether they failed to decode or failed annotation.
	Skipped int

	// NoAuthors counts documents excluded from scoring for lacking
	// authors.
	NoAuthors int

	// Matched is the number of documents with at least one match record.
	Matched int

	// Records is the number of match records written.
	Records int

	// Documents is the number of scored documents in the summary report.
	Documents int
}

// Total returns the number of archive entries considered.
func (s Summary) Total() int {
	return s.Loaded + s.Skipped
}

// HasFailures reports whether any entries were dropped.
func (s Summary) HasFailures() bool {
	return s.Skipped > 0
}

// Run executes the pipeline over the local archive. Documents that fail
// annotation are warned and skipped; every other error aborts the run.
// Report files are written only after matching completes, so an aborted
// run leaves no partial results behind.
func Run(cfg types.Config, ann annotate.Annotator, opts Options, w io.Writer) (Summary, error) {
	set, err := match.Compile(cfg.Terms)
	if err != nil {
		return Summary{}, err
	}

	col, err := corpus.Load(cfg.Fetch.ArchivePath(), w)
	if err != nil {
		return Summary{}, err
	}

	docs := col.Documents
	if opts.Limit > 0 && len(docs) > opts.Limit {
		docs = docs[:opts.Limit]
	}

	sum := Summary{Loaded: len(col.Documents), Skipped: col.Skipped}
	fmt.Fprintf(w, "triaging %d preprints from %s\n", len(docs), cfg.Fetch.ArchivePath())

	var records []types.MatchRecord
	var scores []types.DocumentScore
	for i := range docs {
		doc := &docs[i]

		annotation, err := ann.Annotate(annotate.StripHyphens(doc.Text()))
		if err != nil {
			fmt.Fprintf(w, "warning: skipping %s: %v\n", doc.ID, err)
			sum.Skipped++
			continue
		}

		recs := set.Match(doc.ID, annotation.Tokens, cfg.Report.ContextWindow)
		if len(recs) > 0 {
			sum.Matched++
			records = append(records, recs...)
		}

		// Documents without authors are reported as matches but never
		// scored for the curation summary.
		if doc.NumAuthors == 0 {
			sum.NoAuthors++
			continue
		}

		score, keywords := set.Score(annotate.StemCounts(annotation.Tokens), doc.FromBiorxiv(), cfg.BiorxivBounty)
		authors := make([]string, 0, len(doc.Authors))
		for _, a := range doc.Authors {
			authors = append(authors, corpus.CleanName(corpus.ShortName(a.Name)))
		}
		scores = append(scores, types.DocumentScore{
			Document: doc,
			Score:    score,
			Keywords: keywords,
			Authors:  authors,
			Label:    corpus.CitationLabel(authors, doc.Date),
		})
	}

	sum.Records = len(records)
	sum.Documents = len(scores)

	if err := report.WriteMatches(cfg.Report.OutputFile, records); err != nil {
		return sum, err
	}
	if err := report.WriteSummary(cfg.Report.SummaryFile, scores); err != nil {
		return sum, err
	}

	fmt.Fprintf(w, "\nTriage summary: %d scored, %d matched, %d records, %d skipped (total: %d)\n",
		sum.Documents, sum.Matched, sum.Records, sum.Skipped, sum.Total())
	return sum, nil
}
