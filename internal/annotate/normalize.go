package annotate

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// StripHyphens removes hyphens so hyphenated and fused spellings produce
// the same tokens ("ACE-2" and "ACE2" meet in one token).
func StripHyphens(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

// Keep reports whether a token participates in matching. Empty and
// whitespace-only tokens, punctuation, and English stopwords are dropped.
func Keep(tok Token) bool {
	return KeepText(tok.Text)
}

// KeepText is Keep for a bare string.
func KeepText(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if _, stop := stopwords[strings.ToLower(text)]; stop {
		return false
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Normalize lowercases and stems a token so morphological variants
// ("binds", "binding") collapse to one form.
func Normalize(text string) string {
	return english.Stem(strings.ToLower(strings.TrimSpace(text)), false)
}

// StemCounts filters tokens through Keep and counts their normalized
// forms. The counts feed tier scoring.
func StemCounts(tokens []Token) map[string]int {
	counts := make(map[string]int)
	for _, tok := range tokens {
		if !Keep(tok) {
			continue
		}
		counts[Normalize(tok.Text)]++
	}
	return counts
}
