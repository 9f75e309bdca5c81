// Copyright BioCuration Labs, 2026. All rights reserved.

// Package match compiles the configured interaction term sets and scans
// annotated documents for them.
package match

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/biocuration/preprint-triage/internal/annotate"
	"github.com/biocuration/preprint-triage/pkg/types"
)

// Word is one word of a compiled term, carried in lowercase and stemmed
// form.
type Word struct {
	Lower string
	Stem  string
}

// Term is a compiled interaction term. Multi-word terms match as
// consecutive token phrases.
type Term struct {
	types.InteractionTerm
	Words []Word
}

// tierStems holds the scoring view of one tier: the unique stems of its
// term words, sorted so matched keyword lists come out sorted.
type tierStems struct {
	tier   types.Tier
	bounty int
	stems  []string
}

// Set is a compiled term set, ready for matching and scoring.
type Set struct {
	// Terms lists the compiled terms in matching order: highest tier
	// first, then source order within the tier.
	Terms []Term

	tiers []tierStems
}

// Compile loads and compiles the configured term tiers. Term files carry
// one term per line; hyphens are stripped and blank lines skipped. Inline
// terms merge with file terms, and duplicates within a tier collapse.
func Compile(cfg types.TermsConfig) (*Set, error) {
	set := &Set{}
	for _, spec := range cfg.Tiers() {
		raws, err := tierTerms(spec.TierConfig)
		if err != nil {
			return nil, fmt.Errorf("loading %s terms: %w", spec.Tier, err)
		}

		stems := make(map[string]struct{})
		for _, raw := range raws {
			words := compileWords(raw)
			set.Terms = append(set.Terms, Term{
				InteractionTerm: types.InteractionTerm{Text: raw, Tier: spec.Tier},
				Words:           words,
			})
			for _, w := range words {
				if !annotate.KeepText(w.Lower) {
					continue
				}
				stems[w.Stem] = struct{}{}
			}
		}

		sorted := make([]string, 0, len(stems))
		for stem := range stems {
			sorted = append(sorted, stem)
		}
		sort.Strings(sorted)
		set.tiers = append(set.tiers, tierStems{tier: spec.Tier, bounty: spec.Bounty, stems: sorted})
	}

	if len(set.Terms) == 0 {
		return nil, fmt.Errorf("no interaction terms configured")
	}
	return set, nil
}

// tierTerms merges a tier's file and inline terms, strips hyphens, and
// collapses duplicates case-insensitively, preserving first occurrence
// order.
func tierTerms(cfg types.TierConfig) ([]string, error) {
	var raws []string
	if cfg.File != "" {
		lines, err := readTermFile(cfg.File)
		if err != nil {
			return nil, err
		}
		raws = lines
	}
	raws = append(raws, cfg.Terms...)

	seen := make(map[string]struct{})
	var out []string
	for _, raw := range raws {
		raw = strings.TrimSpace(annotate.StripHyphens(raw))
		if raw == "" {
			continue
		}
		key := strings.ToLower(raw)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, raw)
	}
	return out, nil
}

func readTermFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening term file: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading term file %s: %w", path, err)
	}
	return lines, nil
}

func compileWords(raw string) []Word {
	var words []Word
	for _, f := range strings.Fields(raw) {
		words = append(words, Word{Lower: strings.ToLower(f), Stem: annotate.Normalize(f)})
	}
	return words
}
