package match

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/biocuration/preprint-triage/pkg/types"
)

// TermInfo describes one compiled term for display.
type TermInfo struct {
	Tier  types.Tier `json:"tier"`
	Term  string     `json:"term"`
	Stems []string   `json:"stems"`
}

// Describe returns the compiled terms in matching order.
func (s *Set) Describe() []TermInfo {
	infos := make([]TermInfo, 0, len(s.Terms))
	for _, term := range s.Terms {
		stems := make([]string, 0, len(term.Words))
		for _, w := range term.Words {
			stems = append(stems, w.Stem)
		}
		infos = append(infos, TermInfo{Tier: term.Tier, Term: term.Text, Stems: stems})
	}
	return infos
}

// FormatTable writes the compiled term set as a human-readable table to w.
func FormatTable(s *Set, w io.Writer) {
	infos := s.Describe()
	if len(infos) == 0 {
		fmt.Fprintln(w, "No terms configured.")
		return
	}

	fmt.Fprintf(w, "%-6s  %-32s  %s\n", "Tier", "Term", "Stems")
	fmt.Fprintln(w, strings.Repeat("-", 64))
	for _, info := range infos {
		fmt.Fprintf(w, "%-6s  %-32s  %s\n", info.Tier, info.Term, strings.Join(info.Stems, " "))
	}
	fmt.Fprintf(w, "\n%d terms\n", len(infos))
}

// FormatJSON writes the compiled term set as indented JSON to w.
func FormatJSON(s *Set, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Describe())
}
