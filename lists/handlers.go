package lists

import "unicode/utf8"

// Newline continues the list item under the cursor. A non-empty selection is
// replaced first. On a bare marker the line is cleared down to its
// indentation instead, which exits the list.
func (e *Engine) Newline(d Doc) (Doc, bool) {
	rs := []rune(d.Text)
	sel := normalize(d.Sel, len(rs))
	if !sel.Empty() {
		rs = append(rs[:sel.Start:sel.Start], rs[sel.End:]...)
	}
	cur := sel.Start

	l := lines(rs)
	ls, le := l.bounds(cur)
	it := Classify(string(rs[ls:le]))
	if it.Kind == None {
		return d, false
	}

	if it.Empty() {
		text := splice(rs, ls, le, it.Indent)
		return Doc{Text: text, Sel: Caret(ls + utf8.RuneCountInString(it.Indent))}, true
	}
	if cur < ls+it.Width {
		return d, false
	}

	marker := it.Continuation()
	text := splice(rs, cur, cur, "\n"+marker)
	cur += 1 + utf8.RuneCountInString(marker)
	if it.Numbered() {
		text, cur = Renumber(text, cur)
	}
	return Doc{Text: text, Sel: Caret(cur)}, true
}

// Backspace clears a marker-only line when the cursor sits at its end.
func (e *Engine) Backspace(d Doc) (Doc, bool) {
	rs := []rune(d.Text)
	sel := normalize(d.Sel, len(rs))
	if !sel.Empty() {
		return d, false
	}
	ls, le := lines(rs).bounds(sel.Start)
	if sel.Start != le {
		return d, false
	}
	it := Classify(string(rs[ls:le]))
	if it.Kind == None || !it.Empty() {
		return d, false
	}

	text := splice(rs, ls, le, it.Indent)
	cur := ls + utf8.RuneCountInString(it.Indent)
	if it.Numbered() {
		text, cur = Renumber(text, cur)
	}
	return Doc{Text: text, Sel: Caret(cur)}, true
}

// Tab indents. A selection spanning several lines indents every non-empty
// line in it; otherwise only a list line under the cursor is indented and
// plain text is left to the default tab behavior.
func (e *Engine) Tab(d Doc) (Doc, bool) {
	rs := []rune(d.Text)
	sel := normalize(d.Sel, len(rs))
	l := lines(rs)
	unit, _ := e.indent()

	starts := l.starts(sel.Start, sel.End)
	if len(starts) == 1 {
		ls, le := l.bounds(sel.Start)
		if Classify(string(rs[ls:le])).Kind == None {
			return d, false
		}
	}

	var edits []lineEdit
	for _, ls := range starts {
		_, le := l.bounds(ls)
		if le == ls || isBlank(rs[ls:le]) {
			continue
		}
		edits = append(edits, lineEdit{at: ls, insert: unit})
	}
	return finish(rs, sel, edits), true
}

// ShiftTab outdents every line of the selection (or the cursor line) by one
// unit: a single leading tab, otherwise up to IndentWidth leading spaces.
// It always consumes the key.
func (e *Engine) ShiftTab(d Doc) (Doc, bool) {
	rs := []rune(d.Text)
	sel := normalize(d.Sel, len(rs))
	l := lines(rs)
	_, width := e.indent()

	var edits []lineEdit
	for _, ls := range l.starts(sel.Start, sel.End) {
		_, le := l.bounds(ls)
		n := 0
		if ls < le && rs[ls] == '\t' {
			n = 1
		} else {
			for n < width && ls+n < le && rs[ls+n] == ' ' {
				n++
			}
		}
		if n > 0 {
			edits = append(edits, lineEdit{at: ls, remove: n})
		}
	}
	return finish(rs, sel, edits), true
}

// lineEdit inserts text or removes runes at a line start.
type lineEdit struct {
	at     int
	insert string
	remove int
}

// finish applies line-start edits in order, maps the selection through them
// and renumbers the result.
func finish(rs []rune, sel Sel, edits []lineEdit) Doc {
	out := make([]rune, 0, len(rs)+len(edits)*4)
	prev := 0
	start, end := sel.Start, sel.End
	for _, e := range edits {
		out = append(out, rs[prev:e.at]...)
		if e.insert != "" {
			out = append(out, []rune(e.insert)...)
			n := utf8.RuneCountInString(e.insert)
			start = shiftInsert(start, sel.Start, e.at, n, sel.Empty())
			end = shiftInsert(end, sel.End, e.at, n, true)
			prev = e.at
		} else {
			start -= removedBefore(sel.Start, e.at, e.remove)
			end -= removedBefore(sel.End, e.at, e.remove)
			prev = e.at + e.remove
		}
	}
	out = append(out, rs[prev:]...)

	text := string(out)
	if start == end {
		text, start = Renumber(text, start)
		return Doc{Text: text, Sel: Caret(start)}
	}
	text, start = Renumber(text, start)
	_, end = Renumber(string(out), end)
	return Doc{Text: text, Sel: Sel{Start: start, End: end}}
}

// shiftInsert moves the offset pos (originally orig) past an insertion of n
// runes at at. An offset sitting exactly at the insertion point moves only
// when follow is set, so a selection that starts at a line start grows to
// include the new indentation.
func shiftInsert(pos, orig, at, n int, follow bool) int {
	if orig > at || (orig == at && follow) {
		return pos + n
	}
	return pos
}

func removedBefore(orig, at, n int) int {
	if orig <= at {
		return 0
	}
	if orig-at < n {
		return orig - at
	}
	return n
}

func isBlank(rs []rune) bool {
	for _, r := range rs {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
