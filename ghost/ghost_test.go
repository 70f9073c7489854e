package ghost

import "testing"

func TestSuggest_CompletesFromDocument(t *testing.T) {
	text := "function body\nfun"
	s, ok := Suggest(text, len(text), Options{})
	if !ok || s.Suffix != "ction" || s.At != len(text) {
		t.Fatalf("suggestion=%+v ok=%v, want suffix ction", s, ok)
	}
}

func TestSuggest_NextRuneMustNotBeWord(t *testing.T) {
	text := "function fun more"
	if s, ok := Suggest(text, 12, Options{}); !ok || s.Suffix != "ction" {
		t.Fatalf("before space: %+v %v", s, ok)
	}
	if _, ok := Suggest("function funX", 12, Options{}); ok {
		t.Fatalf("suggested inside a word")
	}
}

func TestSuggest_MinPrefix(t *testing.T) {
	text := "function f"
	if _, ok := Suggest(text, len(text), Options{}); ok {
		t.Fatalf("one rune prefix triggered")
	}
	text = "function fu"
	if _, ok := Suggest(text, len(text), Options{MinPrefix: 3}); ok {
		t.Fatalf("prefix shorter than MinPrefix triggered")
	}
}

func TestSuggest_CaseInsensitiveSortedAndDeduped(t *testing.T) {
	text := "Zeta zebra Zebra zebra ze"
	s, ok := Suggest(text, len(text), Options{})
	if !ok || s.Suffix != "bra" {
		t.Fatalf("suggestion=%+v, want Zebra's suffix", s)
	}
}

func TestSuggest_ExcludesOwnOccurrenceAndEqualLength(t *testing.T) {
	text := "ab fun"
	if _, ok := Suggest(text, len(text), Options{}); ok {
		t.Fatalf("suggested from the prefix itself")
	}
	text = "Fun fun"
	if _, ok := Suggest(text, len(text), Options{}); ok {
		t.Fatalf("equal length word suggested")
	}
}

func TestSuggest_WordsStartWithLetter(t *testing.T) {
	text := "1abc ab"
	if _, ok := Suggest(text, len(text), Options{}); ok {
		t.Fatalf("digit-led token used as candidate")
	}
	text = "ab2x ab"
	if s, ok := Suggest(text, len(text), Options{}); !ok || s.Suffix != "2x" {
		t.Fatalf("suggestion=%+v ok=%v", s, ok)
	}
}

func TestSuggest_OutOfRangeCursor(t *testing.T) {
	if _, ok := Suggest("abc", 9, Options{}); ok {
		t.Fatalf("out of range cursor produced a suggestion")
	}
}

func TestCache(t *testing.T) {
	var c Cache
	k := Key{DocID: "d", Version: 1, Cursor: 3}
	if _, _, hit := c.Get(k); hit {
		t.Fatalf("empty cache hit")
	}
	c.Put(k, Suggestion{At: 3, Suffix: "x"}, true)
	if s, present, hit := c.Get(k); !hit || !present || s.Suffix != "x" {
		t.Fatalf("get=%+v %v %v", s, present, hit)
	}
	if _, _, hit := c.Get(Key{DocID: "d", Version: 2, Cursor: 3}); hit {
		t.Fatalf("stale version hit")
	}
	c.Reset()
	if _, _, hit := c.Get(k); hit {
		t.Fatalf("hit after reset")
	}
}
