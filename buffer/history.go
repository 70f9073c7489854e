package buffer

// state is a restorable copy of the document at one point in time.
type state struct {
	text     string
	cursor   Pos
	anchor   Pos
	anchored bool
}

// history keeps bounded undo and redo stacks of whole-document states.
type history struct {
	limit int
	past  []state
	next  []state
}

func (h *history) push(s state) {
	if h.limit <= 0 {
		return
	}
	h.past = append(h.past, s)
	if over := len(h.past) - h.limit; over > 0 {
		h.past = h.past[over:]
	}
	h.next = nil
}

func (h *history) clear() {
	h.past, h.next = nil, nil
}

func (b *Buffer) capture() state {
	return state{text: b.Text(), cursor: b.cursor, anchor: b.anchor, anchored: b.anchored}
}

// restore loads s, clamping cursor and anchor to its text.
func (b *Buffer) restore(s state) {
	b.lines = splitLines(s.text)
	b.cursor = b.Clamp(s.cursor)
	b.anchor = b.Clamp(s.anchor)
	b.anchored = s.anchored && b.anchor != b.cursor
}

func (b *Buffer) CanUndo() bool { return len(b.hist.past) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.next) > 0 }

// Undo restores the state before the latest edit.
func (b *Buffer) Undo() bool {
	return b.travel(&b.hist.past, &b.hist.next)
}

// Redo re-applies the latest undone edit.
func (b *Buffer) Redo() bool {
	return b.travel(&b.hist.next, &b.hist.past)
}

// travel pops a state from from, pushes the current state onto to and
// restores the popped one.
func (b *Buffer) travel(from, to *[]state) bool {
	n := len(*from)
	if n == 0 {
		return false
	}
	target := (*from)[n-1]
	*from = (*from)[:n-1]

	cur := b.capture()
	*to = append(*to, cur)

	ver := b.version
	b.restore(target)
	b.version++
	b.recordChange(ChangeSourceHistory, ver, cur.text)
	return true
}
