package renderer

import (
	"github.com/etnz/tradecal/symbol"
)

// CandidatesMarkdown renders symbol search results as a markdown table.
func CandidatesMarkdown(query string, candidates []symbol.Candidate) string {
	r := newReportBuilder()
	r.Printf("# Symbols matching %q\n\n", query)

	if len(candidates) == 0 {
		r.Printf("No matches.\n")
		return r.String()
	}

	r.Printf("| Symbol | Name |\n")
	r.Printf("|:---|:---|\n")
	for _, c := range candidates {
		name := c.Name
		if name == "" {
			name = "?"
		}
		r.Printf("| %s | %s |\n", c.Symbol, name)
	}
	if len(candidates) == symbol.MaxCandidates {
		r.Printf("\nShowing the first %d matches.\n", symbol.MaxCandidates)
	}
	return r.String()
}
