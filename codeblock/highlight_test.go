package codeblock

import (
	"strings"
	"testing"

	"github.com/iw2rmb/quill/attr"
)

func resolve(body, tag string) *attr.Map {
	m := attr.NewMap(len([]rune(body)), attr.Attrs{}.WithFg(attr.ColorBase))
	m.ApplyAll(Highlight(body, tag))
	return m
}

// fgAt reports the resolved foreground of the first rune of sub in body.
func fgAt(t *testing.T, m *attr.Map, body, sub string) attr.Color {
	t.Helper()
	i := strings.Index(body, sub)
	if i < 0 {
		t.Fatalf("%q not in %q", sub, body)
	}
	return m.At(len([]rune(body[:i]))).Fg
}

func TestHighlight_EmptyTagYieldsNothing(t *testing.T) {
	if got := Highlight("func main() {}", ""); got != nil {
		t.Fatalf("spans=%v, want none", got)
	}
}

func TestHighlight_GoTokenClasses(t *testing.T) {
	body := "func main() {\n\tvar n int = 0x1F\n\treturn\n}"
	m := resolve(body, "go")

	cases := []struct {
		sub  string
		want attr.Color
	}{
		{"func", attr.ColorKeyword},
		{"main", attr.ColorFunction},
		{"var", attr.ColorKeyword},
		{"int", attr.ColorType},
		{"0x1F", attr.ColorNumber},
		{"return", attr.ColorKeyword},
		{"n int", attr.ColorBase},
	}
	for _, tc := range cases {
		if got := fgAt(t, m, body, tc.sub); got != tc.want {
			t.Fatalf("%q fg=%q, want %q", tc.sub, got, tc.want)
		}
	}
}

func TestHighlight_CommentsWinOverKeywords(t *testing.T) {
	body := "x := 1 // if return \"s\""
	m := resolve(body, "go")

	for _, sub := range []string{"//", "if", "return", "\"s\""} {
		if got := fgAt(t, m, body, sub); got != attr.ColorComment {
			t.Fatalf("%q fg=%q, want comment", sub, got)
		}
	}
	i := strings.Index(body, "if")
	if m.At(i).Slant != attr.SlantItalic {
		t.Fatalf("comment text not italic")
	}
	if got := fgAt(t, m, body, "1"); got != attr.ColorNumber {
		t.Fatalf("number before comment fg=%q", got)
	}
}

func TestHighlight_CommentOpenerInsideStringIsString(t *testing.T) {
	body := `u := "http://example.com" // tail`
	m := resolve(body, "go")

	if got := fgAt(t, m, body, "example"); got != attr.ColorString {
		t.Fatalf("url fg=%q, want string", got)
	}
	if got := fgAt(t, m, body, "tail"); got != attr.ColorComment {
		t.Fatalf("tail fg=%q, want comment", got)
	}
}

func TestHighlight_StringsWinOverKeywords(t *testing.T) {
	body := `print("for while")`
	m := resolve(body, "python")

	if got := fgAt(t, m, body, "for"); got != attr.ColorString {
		t.Fatalf("keyword in string fg=%q, want string", got)
	}
	if got := fgAt(t, m, body, "print"); got != attr.ColorFunction {
		t.Fatalf("call fg=%q, want function", got)
	}
}

func TestHighlight_PythonTripleQuotedSpansLines(t *testing.T) {
	body := "x = \"\"\"first\nif second\"\"\"\ny = 2"
	m := resolve(body, "py")

	if got := fgAt(t, m, body, "if second"); got != attr.ColorString {
		t.Fatalf("triple quoted body fg=%q, want string", got)
	}
	if got := fgAt(t, m, body, "2"); got != attr.ColorNumber {
		t.Fatalf("after string fg=%q, want number", got)
	}
}

func TestHighlight_JSONKeysValuesAndNoCalls(t *testing.T) {
	body := `{"name": "quill", "tags": ["a", "b"], "n": 1.5e3, "ok": true, "f": fn(1)}`
	m := resolve(body, "json")

	cases := []struct {
		sub  string
		want attr.Color
	}{
		{`"name"`, attr.ColorProperty},
		{`"quill"`, attr.ColorString},
		{`"tags"`, attr.ColorProperty},
		{`"a"`, attr.ColorString},
		{`"b"`, attr.ColorString},
		{`1.5e3`, attr.ColorNumber},
		{`true`, attr.ColorKeyword},
		{`fn`, attr.ColorBase},
	}
	for _, tc := range cases {
		if got := fgAt(t, m, body, tc.sub); got != tc.want {
			t.Fatalf("%s fg=%q, want %q", tc.sub, got, tc.want)
		}
	}
}

func TestHighlight_MarkupTagsAndAttributes(t *testing.T) {
	body := `<a href="x">link</a><!-- <b> -->`
	m := resolve(body, "html")

	if got := fgAt(t, m, body, "a href"); got != attr.ColorTag {
		t.Fatalf("tag fg=%q", got)
	}
	if got := fgAt(t, m, body, "href"); got != attr.ColorAttribute {
		t.Fatalf("attribute fg=%q", got)
	}
	if got := fgAt(t, m, body, `"x"`); got != attr.ColorString {
		t.Fatalf("value fg=%q", got)
	}
	if got := fgAt(t, m, body, "link"); got != attr.ColorBase {
		t.Fatalf("text fg=%q", got)
	}
	if got := fgAt(t, m, body, "<b>"); got != attr.ColorComment {
		t.Fatalf("commented tag fg=%q", got)
	}
}

func TestHighlight_CSSPropertySelectorUnit(t *testing.T) {
	body := ".card {\n  margin: 10px;\n}"
	m := resolve(body, "css")

	if got := fgAt(t, m, body, ".card"); got != attr.ColorTag {
		t.Fatalf("selector fg=%q", got)
	}
	if got := fgAt(t, m, body, "margin"); got != attr.ColorProperty {
		t.Fatalf("property fg=%q", got)
	}
	if got := fgAt(t, m, body, "px"); got != attr.ColorKeyword {
		t.Fatalf("unit fg=%q", got)
	}
}

func TestHighlight_OffsetsAreRunes(t *testing.T) {
	body := "// héllo\nx"
	spans := Highlight(body, "go")
	if len(spans) == 0 {
		t.Fatalf("no spans")
	}
	last := spans[len(spans)-1]
	if last.Start != 0 || last.End != 8 {
		t.Fatalf("comment span=[%d,%d), want [0,8)", last.Start, last.End)
	}
}

func TestLookup_Aliases(t *testing.T) {
	cases := []struct {
		tag, want string
		ok        bool
	}{
		{"go", "go", true},
		{"GO", "go", true},
		{"golang", "go", true},
		{"py", "python", true},
		{"js", "javascript", true},
		{"yml", "yaml", true},
		{"sh", "shell", true},
		{"c++", "cpp", true},
		{"nosuchlanguage", "generic", false},
	}
	for _, tc := range cases {
		l, ok := Lookup(tc.tag)
		if l.Name != tc.want || ok != tc.ok {
			t.Fatalf("Lookup(%q)=(%q,%v), want (%q,%v)", tc.tag, l.Name, ok, tc.want, tc.ok)
		}
	}
}

func TestHighlight_UnknownTagUsesGenericTable(t *testing.T) {
	body := "return foo(1) // done"
	m := resolve(body, "nosuchlanguage")

	if got := fgAt(t, m, body, "return"); got != attr.ColorKeyword {
		t.Fatalf("generic keyword fg=%q", got)
	}
	if got := fgAt(t, m, body, "done"); got != attr.ColorComment {
		t.Fatalf("generic comment fg=%q", got)
	}
}

func TestLanguages_CoversBuiltinTables(t *testing.T) {
	if got := len(Languages()); got != 19 {
		t.Fatalf("languages=%d, want 19", got)
	}
}
