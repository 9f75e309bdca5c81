// Copyright BioCuration Labs, 2026. All rights reserved.

package types

// Tier identifies the priority tier an interaction term belongs to.
type Tier string

const (
	TierHigh Tier = "high"
	TierMed  Tier = "med"
	TierLow  Tier = "low"
)

// InteractionTerm is one configured biological interaction term, a word or
// phrase curators want flagged (e.g. "ACE2", "spike protein").
type InteractionTerm struct {
	// Text is the raw configured term, hyphens stripped.
	Text string `json:"text" yaml:"text"`

	// Tier is the priority tier the term was configured under.
	Tier Tier `json:"tier" yaml:"tier"`
}

// MatchRecord is one occurrence of an interaction term in a document.
// Every record references a document in the current run's loaded set.
type MatchRecord struct {
	// DocumentID is the DOI of the matched document.
	DocumentID string `json:"document_id" yaml:"document_id"`

	// Term is the raw configured term that matched.
	Term string `json:"term" yaml:"term"`

	// Context is the surrounding text of the match, clipped to the
	// configured window.
	Context string `json:"context" yaml:"context"`

	// Position is the token index where the match starts.
	Position int `json:"position" yaml:"position"`

	// Tier is the tier of the matched term.
	Tier Tier `json:"tier" yaml:"tier"`
}

// DocumentScore is the triage result for one document: the weighted score
// plus the matched keyword stems, ready for the summary report.
type DocumentScore struct {
	// Document is the scored document.
	Document *Document `json:"document" yaml:"document"`

	// Score is the weighted keyword score, tier bounties applied.
	Score int `json:"score" yaml:"score"`

	// Keywords lists the matched keyword stems, sorted within each tier,
	// tiers concatenated highest first.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Authors lists the formatted short author names in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	// Label is the citation-style label, first author plus year.
	Label string `json:"label" yaml:"label"`
}
