package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

// Buffer is the document state: lines of runes, the cursor and an optional
// selection anchor. The selection always spans from the anchor to the
// cursor.
//
// Buffer is not safe for concurrent use; it is owned by a single editing session.
type Buffer struct {
	lines   [][]rune
	version uint64

	cursor   Pos
	anchor   Pos
	anchored bool

	hist history

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		hist:  history{limit: opt.HistoryLimit},
	}
}

func (b *Buffer) Text() string {
	parts := make([]string, len(b.lines))
	for i, line := range b.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// LineCount returns the number of logical lines (always at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// Version increases on every change to the text, cursor or selection.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor and collapses the selection.
func (b *Buffer) SetCursor(p Pos) {
	p = b.Clamp(p)
	_, had := b.Selection()
	b.anchored = false
	if p != b.cursor || had {
		b.cursor = p
		b.version++
	}
}

// Selection returns the ordered selection range. ok is false when nothing
// is selected.
func (b *Buffer) Selection() (r Range, ok bool) {
	if !b.anchored || b.anchor == b.cursor {
		return Range{}, false
	}
	return Range{Start: b.anchor, End: b.cursor}.Ordered(), true
}

// SetSelection anchors the selection at r.Start and puts the cursor on
// r.End.
func (b *Buffer) SetSelection(r Range) {
	prev, had := b.Selection()
	from := b.cursor

	b.anchor, b.cursor = b.Clamp(r.Start), b.Clamp(r.End)
	b.anchored = b.anchor != b.cursor

	if cur, has := b.Selection(); has != had || cur != prev || b.cursor != from {
		b.version++
	}
}

// Reset replaces the whole document, for example after the file changed on
// disk. Cursor and selection are clamped to the new content and the undo
// history is dropped.
func (b *Buffer) Reset(text string) {
	cur := b.capture()
	if text == cur.text {
		return
	}
	ver, old := b.version, cur.text
	cur.text = text
	b.restore(cur)
	b.hist.clear()
	b.version++
	b.recordChange(ChangeSourceReload, ver, old)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, s := range parts {
		lines[i] = []rune(s)
	}
	return lines
}
