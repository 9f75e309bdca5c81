// Copyright BioCuration Labs, 2026. All rights reserved.

// Package corpus loads the coronavirus preprint collection archive into
// documents the triage pipeline can scan.
package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biocuration/preprint-triage/pkg/types"
)

// archive is the wire envelope of the collection feed.
type archive struct {
	Rels []json.RawMessage `json:"rels"`
}

// entry is one feed record. Entries are decoded individually so one bad
// record never aborts the run.
type entry struct {
	DOI        string        `json:"rel_doi"`
	Title      string        `json:"rel_title"`
	Abstract   string        `json:"rel_abs"`
	Authors    []entryAuthor `json:"rel_authors"`
	Date       string        `json:"rel_date"`
	Site       string        `json:"rel_site"`
	Link       string        `json:"rel_link"`
	NumAuthors int           `json:"rel_num_authors"`
	Version    string        `json:"version"`
	Category   string        `json:"category"`
}

type entryAuthor struct {
	Name        string `json:"author_name"`
	Institution string `json:"author_inst"`
}

// Collection holds the loaded documents plus load statistics.
type Collection struct {
	// Documents lists the loaded preprints in archive order.
	Documents []types.Document

	// Skipped counts entries dropped during load.
	Skipped int
}

// Load reads the archive at path. A missing file or a malformed envelope
// is fatal. Entries that fail to decode, or that lack a DOI, are skipped
// with a warning on w and counted.
func Load(path string, w io.Writer) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}

	var arch archive
	if err := json.Unmarshal(data, &arch); err != nil {
		return nil, fmt.Errorf("parsing archive %s: %w", path, err)
	}

	col := &Collection{}
	for i, raw := range arch.Rels {
		var e entry
		if err := json.Unmarshal(raw, &e); err != nil {
			fmt.Fprintf(w, "warning: skipping entry %d: %v\n", i, err)
			col.Skipped++
			continue
		}
		if e.DOI == "" {
			fmt.Fprintf(w, "warning: skipping entry %d: missing DOI\n", i)
			col.Skipped++
			continue
		}

		authors := make([]types.Author, 0, len(e.Authors))
		for _, a := range e.Authors {
			authors = append(authors, types.Author{Name: a.Name, Institution: a.Institution})
		}
		col.Documents = append(col.Documents, types.Document{
			ID:         e.DOI,
			Title:      e.Title,
			Abstract:   e.Abstract,
			Authors:    authors,
			Date:       e.Date,
			Site:       e.Site,
			Link:       e.Link,
			NumAuthors: e.NumAuthors,
			Version:    e.Version,
			Category:   e.Category,
		})
	}
	return col, nil
}

// Stats summarizes a loaded collection.
type Stats struct {
	// Loaded is the number of documents loaded.
	Loaded int

	// Skipped is the number of entries dropped during load.
	Skipped int

	// NoAuthors is the number of documents with a zero author count.
	NoAuthors int

	// Sites counts documents per hosting site, lowercased.
	Sites map[string]int

	// FirstDate and LastDate bound the posting dates present.
	FirstDate string
	LastDate  string
}

// Stats computes collection statistics for inspection.
func (c *Collection) Stats() Stats {
	s := Stats{
		Loaded:  len(c.Documents),
		Skipped: c.Skipped,
		Sites:   make(map[string]int),
	}
	for _, doc := range c.Documents {
		s.Sites[strings.ToLower(doc.Site)]++
		if doc.NumAuthors == 0 {
			s.NoAuthors++
		}
		if doc.Date == "" {
			continue
		}
		if s.FirstDate == "" || doc.Date < s.FirstDate {
			s.FirstDate = doc.Date
		}
		if doc.Date > s.LastDate {
			s.LastDate = doc.Date
		}
	}
	return s
}
