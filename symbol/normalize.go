// Package symbol resolves free-text queries to exchange symbols.
//
// Candidates are merged from several sources in a fixed priority order:
// the embedded curated catalog, the locally cached master list, the
// manual transliteration aliases, a best-effort remote search, and the
// symbols already used in the ledger.
package symbol

import "strings"

// kana block distance: katakana ァ..ヶ sits 0x60 above hiragana ぁ..ゖ.
const kanaOffset = 0x60

// Normalize folds text for matching: unicode case folding plus folding
// katakana onto hiragana by the fixed codepoint offset, so "トヨタ" and
// "とよた" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= kanaOffset
		}
		b.WriteRune(r)
	}
	return b.String()
}
