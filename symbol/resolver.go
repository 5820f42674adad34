package symbol

import (
	"context"
	"regexp"
	"strings"
)

// ExchangeSuffix is appended to bare 4-digit local codes: "7203"
// canonicalizes to "7203.T" (Tokyo).
const ExchangeSuffix = ".T"

// MaxCandidates caps the merged result list.
const MaxCandidates = 20

// Candidate is a possible resolution of a query.
type Candidate struct {
	Symbol string
	Name   string
}

// Source identifies where a candidate, or a resolution warning, came from.
type Source string

const (
	SourceCatalog Source = "catalog"
	SourceMaster  Source = "master"
	SourceAlias   Source = "alias"
	SourceSearch  Source = "search"
	SourceHistory Source = "history"
)

// Warning carries a non-fatal resolution failure. The resolver never
// drops error information; the caller decides whether to surface it.
type Warning struct {
	Source Source
	Err    error
}

func (w Warning) Error() string { return string(w.Source) + ": " + w.Err.Error() }

// SearchFunc is a best-effort remote search. Implementations must
// filter to equity instruments and degrade failures to an error return,
// never a panic.
type SearchFunc func(ctx context.Context, query string) ([]Candidate, error)

// Resolver merges candidates from its sources, in field order of
// priority. Any source may be left unset.
type Resolver struct {
	Catalog []Candidate       // curated, embedded
	Master  *MasterList       // cached listing, refreshed on request
	Aliases map[string]string // normalized transliteration -> symbol
	Search  SearchFunc        // remote, best-effort
	History func() []string   // symbols already used in the ledger
}

var numericCodeRE = regexp.MustCompile(`^\d{4}$`)

// Canonicalize appends the exchange suffix to a bare 4-digit code and
// leaves anything else untouched.
func Canonicalize(code string) string {
	code = strings.TrimSpace(code)
	if numericCodeRE.MatchString(code) {
		return code + ExchangeSuffix
	}
	return code
}

// matches reports whether the normalized query is a substring of the
// candidate's normalized display name or lowercased symbol code.
func matches(nq string, c Candidate) bool {
	if nq == "" {
		return false
	}
	return strings.Contains(Normalize(c.Name), nq) ||
		strings.Contains(strings.ToLower(c.Symbol), nq)
}

// Resolve merges matching candidates from all configured sources.
// Duplicates keep the first (highest-priority-source) occurrence and
// the merged list is capped at MaxCandidates. Source failures are
// returned as warnings next to whatever candidates the other sources
// produced.
func (r *Resolver) Resolve(ctx context.Context, query string) ([]Candidate, []Warning) {
	nq := Normalize(Canonicalize(query))
	if nq == "" {
		return nil, nil
	}

	var merged []Candidate
	var warnings []Warning
	seen := make(map[string]struct{})
	keep := func(c Candidate) {
		if c.Symbol == "" {
			return
		}
		if _, ok := seen[c.Symbol]; ok {
			return
		}
		seen[c.Symbol] = struct{}{}
		merged = append(merged, c)
	}

	// a bare numeric code always resolves, known or not; it goes in
	// first so the candidate cap can never push it out
	if canonical := Canonicalize(query); canonical != strings.TrimSpace(query) {
		keep(Candidate{Symbol: canonical, Name: r.nameOf(canonical)})
	}

	// (a) curated catalog
	for _, c := range r.Catalog {
		if matches(nq, c) {
			keep(c)
		}
	}

	// (b) cached master list
	if r.Master != nil {
		for _, c := range r.Master.Candidates {
			if matches(nq, c) {
				keep(c)
			}
		}
	}

	// (c) transliteration aliases
	for alias, sym := range r.Aliases {
		if strings.Contains(alias, nq) || strings.Contains(nq, alias) {
			keep(Candidate{Symbol: sym, Name: r.nameOf(sym)})
		}
	}

	// (d) remote search, best-effort
	if r.Search != nil {
		found, err := r.Search(ctx, query)
		if err != nil {
			warnings = append(warnings, Warning{Source: SourceSearch, Err: err})
		}
		for _, c := range found {
			keep(c)
		}
	}

	// (e) symbols already used in the ledger
	if r.History != nil {
		for _, s := range r.History() {
			if matches(nq, Candidate{Symbol: s}) {
				keep(Candidate{Symbol: s, Name: r.nameOf(s)})
			}
		}
	}

	if len(merged) > MaxCandidates {
		merged = merged[:MaxCandidates]
	}
	return merged, warnings
}

// nameOf looks a display name up in the catalog then the master list.
func (r *Resolver) nameOf(sym string) string {
	for _, c := range r.Catalog {
		if c.Symbol == sym {
			return c.Name
		}
	}
	if r.Master != nil {
		for _, c := range r.Master.Candidates {
			if c.Symbol == sym {
				return c.Name
			}
		}
	}
	return ""
}
