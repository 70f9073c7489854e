package buffer

import "strings"

// InsertText replaces the selection with s, or inserts s at the cursor. An
// empty s only deletes the selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward removes the selection, or the grapheme cluster (or line
// break) before the cursor.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	b.edit(Range{Start: b.stepChar(b.cursor, DirLeft), End: b.cursor}, "")
}

// DeleteForward removes the selection, or the grapheme cluster (or line
// break) after the cursor.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	b.edit(Range{Start: b.cursor, End: b.stepChar(b.cursor, DirRight)}, "")
}

func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
	}
}

// ReplaceRuneRange replaces the flat rune range [start, end) with text as one
// undoable edit and leaves the cursor after the inserted text. Offsets are
// clamped into document bounds.
func (b *Buffer) ReplaceRuneRange(start, end int, text string) bool {
	return b.edit(Range{Start: b.PosAt(start), End: b.PosAt(end)}, text)
}

// edit applies one effective replacement as a single undo step.
func (b *Buffer) edit(r Range, text string) bool {
	prev := b.capture()
	ver := b.version

	cursor, ok := b.splice(r, text)
	if !ok {
		return false
	}
	b.cursor = cursor
	b.anchored = false
	b.version++
	b.hist.push(prev)
	b.recordChange(ChangeSourceEdit, ver, prev.text)
	return true
}

// splice replaces r with text and returns the position just past the
// inserted text. It reports false when the content would not change.
func (b *Buffer) splice(r Range, text string) (Pos, bool) {
	r = b.clampRange(r)
	if b.slice(r) == text {
		return b.cursor, false
	}

	head := append([]rune(nil), b.lines[r.Start.Row][:r.Start.Col]...)
	tail := b.lines[r.End.Row][r.End.Col:]

	ins := splitLines(text)
	last := len(ins) - 1
	end := Pos{Row: r.Start.Row + last, Col: len(ins[last])}
	if last == 0 {
		end.Col += len(head)
	}
	ins[0] = append(head, ins[0]...)
	ins[last] = append(ins[last], tail...)

	lines := make([][]rune, 0, len(b.lines)-(r.End.Row-r.Start.Row)+last)
	lines = append(lines, b.lines[:r.Start.Row]...)
	lines = append(lines, ins...)
	lines = append(lines, b.lines[r.End.Row+1:]...)
	b.lines = lines
	return end, true
}

// slice returns the text inside a clamped, normalized range.
func (b *Buffer) slice(r Range) string {
	if r.Start.Row == r.End.Row {
		return string(b.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}
	parts := make([]string, 0, r.End.Row-r.Start.Row+1)
	parts = append(parts, string(b.lines[r.Start.Row][r.Start.Col:]))
	for _, line := range b.lines[r.Start.Row+1 : r.End.Row] {
		parts = append(parts, string(line))
	}
	parts = append(parts, string(b.lines[r.End.Row][:r.End.Col]))
	return strings.Join(parts, "\n")
}
