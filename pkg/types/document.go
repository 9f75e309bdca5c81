// Copyright BioCuration Labs, 2026. All rights reserved.

package types

import "strings"

// Author is one author of a preprint as shipped in the collection feed.
type Author struct {
	// Name is the author name in "First Middle Last" order.
	Name string `json:"name" yaml:"name"`

	// Institution is the author's affiliation, when the feed carries one.
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`
}

// Document is one preprint from the coronavirus collection. Documents are
// immutable after load and discarded when the run ends.
type Document struct {
	// ID is the preprint DOI.
	ID string `json:"id" yaml:"id"`

	// Title is the preprint title.
	Title string `json:"title" yaml:"title"`

	// Abstract is the preprint abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors lists the authors in feed order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Date is the posting date as shipped, "YYYY-MM-DD".
	Date string `json:"date" yaml:"date"`

	// Site identifies the hosting site ("biorxiv" or "medrxiv").
	Site string `json:"site" yaml:"site"`

	// Link is the canonical URL of the preprint.
	Link string `json:"link" yaml:"link"`

	// NumAuthors is the author count reported by the feed.
	NumAuthors int `json:"num_authors" yaml:"num_authors"`

	// Version is the preprint revision, when the feed carries one.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Category is the subject category, when the feed carries one.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Text returns the scannable text of the document: title and abstract
// joined by a space.
func (d Document) Text() string {
	return d.Title + " " + d.Abstract
}

// FromBiorxiv reports whether the document was posted on bioRxiv.
func (d Document) FromBiorxiv() bool {
	return strings.EqualFold(d.Site, "biorxiv")
}
