package symbol

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
	}{
		{"katakana folds to hiragana", "トヨタ", "とよた"},
		{"ascii case folds", "Toyota", "toyota"},
		{"mixed script", "ソニーGroup", "そにーgroup"},
		{"small kana", "キャノン", "きゃのん"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.a); got != Normalize(tc.b) {
				t.Errorf("Normalize(%q) = %q, want equal to Normalize(%q) = %q",
					tc.a, got, tc.b, Normalize(tc.b))
			}
		})
	}
}

func TestNormalize_LeavesKanjiAlone(t *testing.T) {
	if got := Normalize("自動車"); got != "自動車" {
		t.Errorf("Normalize(自動車) = %q", got)
	}
}

func TestCanonicalize(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"7203", "7203.T"},
		{" 7203 ", "7203.T"},
		{"7203.T", "7203.T"},
		{"720", "720"},
		{"72030", "72030"},
		{"AAPL", "AAPL"},
		{"", ""},
	}
	for _, tc := range testCases {
		if got := Canonicalize(tc.in); got != tc.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
