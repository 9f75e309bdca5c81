// Copyright BioCuration Labs, 2026. All rights reserved.

package match

import (
	"strings"

	"github.com/biocuration/preprint-triage/internal/annotate"
	"github.com/biocuration/preprint-triage/pkg/types"
)

// Match scans a document's tokens for the compiled terms. Scanning left
// to right, the first matching term wins at each position (highest tier
// first, then source order) and the scan resumes after the matched span.
// Repeated occurrences of a term each produce a record. Window is the
// number of context words kept on each side of a match.
func (s *Set) Match(docID string, tokens []annotate.Token, window int) []types.MatchRecord {
	lowers := make([]string, len(tokens))
	stems := make([]string, len(tokens))
	for i, tok := range tokens {
		lowers[i] = strings.ToLower(tok.Text)
		stems[i] = annotate.Normalize(tok.Text)
	}

	var records []types.MatchRecord
	for i := 0; i < len(tokens); {
		term, ok := s.matchAt(lowers, stems, i)
		if !ok {
			i++
			continue
		}
		span := len(term.Words)
		records = append(records, types.MatchRecord{
			DocumentID: docID,
			Term:       term.Text,
			Context:    contextOf(tokens, i, span, window),
			Position:   i,
			Tier:       term.Tier,
		})
		i += span
	}
	return records
}

// matchAt returns the first term whose words all match the tokens
// starting at position i.
func (s *Set) matchAt(lowers, stems []string, i int) (Term, bool) {
	for _, term := range s.Terms {
		if i+len(term.Words) > len(lowers) {
			continue
		}
		matched := true
		for j, w := range term.Words {
			if !wordMatches(lowers[i+j], stems[i+j], w) {
				matched = false
				break
			}
		}
		if matched {
			return term, true
		}
	}
	return Term{}, false
}

// wordMatches reports whether a document token matches one term word:
// case-insensitive containment (which covers exact equality) or stem
// equality, so morphological variants count.
func wordMatches(lower, stem string, w Word) bool {
	return strings.Contains(lower, w.Lower) || stem == w.Stem
}

// contextOf joins the tokens around a match, window words on each side,
// with ellipses marking clipped text.
func contextOf(tokens []annotate.Token, start, span, window int) string {
	lo := start - window
	if lo < 0 {
		lo = 0
	}
	hi := start + span + window
	if hi > len(tokens) {
		hi = len(tokens)
	}

	texts := make([]string, 0, hi-lo+2)
	if lo > 0 {
		texts = append(texts, "...")
	}
	for _, tok := range tokens[lo:hi] {
		texts = append(texts, tok.Text)
	}
	if hi < len(tokens) {
		texts = append(texts, "...")
	}
	return strings.Join(texts, " ")
}

// Score computes the weighted keyword score of a document from its kept
// stem counts. Each tier contributes the sum of its matched stem counts
// times the tier bounty; documents from bioRxiv earn biorxivBounty on
// top. The returned keywords are the matched stems, sorted within each
// tier, tiers concatenated highest first.
func (s *Set) Score(counts map[string]int, fromBiorxiv bool, biorxivBounty int) (int, []string) {
	total := 0
	var matched []string
	for _, tier := range s.tiers {
		tierScore := 0
		for _, stem := range tier.stems {
			if n := counts[stem]; n > 0 {
				tierScore += n
				matched = append(matched, stem)
			}
		}
		total += tierScore * tier.bounty
	}
	if fromBiorxiv {
		total += biorxivBounty
	}
	return total, matched
}
