package scan

import (
	"regexp"
	"testing"
)

func TestIndex_MultiByte(t *testing.T) {
	x := NewIndex("aπb")
	cases := map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 3}
	for b, want := range cases {
		if got := x.Rune(b); got != want {
			t.Fatalf("Rune(%d)=%d, want %d", b, got, want)
		}
	}
	if got := x.Len(); got != 3 {
		t.Fatalf("Len=%d, want 3", got)
	}
}

func TestFindAll_GuardRetriesInsideRejectedMatch(t *testing.T) {
	re := regexp.MustCompile(`\*([^*]+)\*`)
	notStarred := func(s string, m Match) bool {
		return Before(s, m[0]) != '*' && After(s, m[1]) != '*'
	}

	if got := FindAll(re, "**bold**", notStarred); len(got) != 0 {
		t.Fatalf("expected bold markers to be rejected, got %v", got)
	}

	got := FindAll(re, "a *b* and *c*", notStarred)
	if len(got) != 2 {
		t.Fatalf("matches=%d, want 2", len(got))
	}
	if s, e, ok := got[1].Group(1); !ok || s != 11 || e != 12 {
		t.Fatalf("second group=(%d,%d,%v), want (11,12,true)", s, e, ok)
	}
}

func TestFindAll_NoGuard(t *testing.T) {
	re := regexp.MustCompile(`\d+`)
	got := FindAll(re, "a1 b22", nil)
	if len(got) != 2 || got[1][0] != 4 {
		t.Fatalf("unexpected matches %v", got)
	}
}

func TestFindAll_RetryKeepsLineAnchor(t *testing.T) {
	re := regexp.MustCompile(`(?m)^[ \t]*([-*])[ \t]`)
	notFirst := func(s string, m Match) bool { return m[0] != 0 }

	if got := FindAll(re, "- - -", notFirst); len(got) != 0 {
		t.Fatalf("mid-line retry matched: %v", got)
	}
	got := FindAll(re, "- a\n* b", notFirst)
	if len(got) != 1 || got[0][0] != 4 {
		t.Fatalf("matches=%v, want one at 4", got)
	}
}

func TestFindAll_RetryKeepsWordBoundary(t *testing.T) {
	re := regexp.MustCompile(`\b(?:xif|if)\b`)
	rejectX := func(s string, m Match) bool { return s[m[0]] != 'x' }

	if got := FindAll(re, "xif", rejectX); len(got) != 0 {
		t.Fatalf("retry inside a word matched: %v", got)
	}
}
