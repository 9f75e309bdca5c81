package corpus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// nameSeparators are the characters stripped from given-name parts when
// cleaning author names.
var nameSeparators = []string{".", ";", ",", "_", "-"}

// ShortName collapses a "First Middle Last" name to "Last FM" form.
// A trailing Jr/Sr token shifts the surname one position left, and
// lowercase particles ("van", "de") fold into the surname.
func ShortName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return titleCase(parts[0])
	}

	last := titleCase(parts[len(parts)-1])
	lastLoc := 1
	if lower := strings.ToLower(last); strings.HasPrefix(lower, "jr") || strings.HasPrefix(lower, "sr") {
		last = parts[len(parts)-2]
		lastLoc = 2
	}

	var initials strings.Builder
	for i := 0; i < len(parts)-lastLoc; i++ {
		p := strings.Trim(parts[i], ".,;")
		if p == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(p)
		if i == 0 || utf8.RuneCountInString(p) == 1 || unicode.IsUpper(r) {
			initials.WriteRune(unicode.ToUpper(r))
		} else {
			// Lowercase multi-letter part: a surname particle.
			last = p + " " + last
		}
	}
	return strings.TrimSpace(last + " " + initials.String())
}

// CleanName strips separator punctuation from an author name. A
// comma-separated "Last, First" name is reordered to "Last First" with
// the given-name part fully collapsed.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if parts := strings.Split(name, ","); len(parts) >= 2 {
		first := parts[1]
		for _, sep := range append([]string{" "}, nameSeparators...) {
			first = strings.ReplaceAll(first, sep, "")
		}
		return parts[0] + " " + first
	}

	for _, sep := range nameSeparators {
		name = strings.ReplaceAll(name, sep, "")
	}
	return strings.TrimSpace(name)
}

// CitationLabel formats the first author and the posting year as a
// citation-style label, "Smith JM (2020)".
func CitationLabel(authors []string, date string) string {
	year, _, _ := strings.Cut(date, "-")
	if len(authors) == 0 {
		return "(" + year + ")"
	}
	return CleanName(authors[0]) + " (" + year + ")"
}

// titleCase uppercases the first letter of each letter run and lowercases
// the rest, matching the casing applied to surnames.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			prevLetter = false
			continue
		}
		if prevLetter {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		prevLetter = true
	}
	return b.String()
}
