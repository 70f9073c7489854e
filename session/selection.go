package session

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/lists"
)

// Selection returns the current selection. A collapsed selection is the
// cursor.
func (s *Session) Selection() Selection {
	if r, ok := s.buf.Selection(); ok {
		start := s.offset(r.Start)
		return Selection{Location: start, Length: s.offset(r.End) - start}
	}
	return Selection{Location: s.offset(s.buf.Cursor())}
}

// Caret returns the cursor offset: the moving end of the selection.
func (s *Session) Caret() int { return s.offset(s.buf.Cursor()) }

// SetSelection clamps sel against the document and applies it. Any ghost
// suggestion is dropped.
func (s *Session) SetSelection(sel Selection) {
	s.clearGhost()
	s.applySel(s.clampSelection(sel))
}

// Move moves the cursor or extends the selection and drops the ghost
// suggestion.
func (s *Session) Move(m buffer.Move) {
	s.clearGhost()
	s.buf.Move(m)
}

// clampSelection forces 0 <= Location and Location+Length <= Len.
func (s *Session) clampSelection(sel Selection) Selection {
	n := s.buf.Len()
	in := sel
	if sel.Length < 0 {
		sel.Location += sel.Length
		sel.Length = -sel.Length
	}
	sel.Location = clampInt(sel.Location, 0, n)
	sel.Length = clampInt(sel.Length, 0, n-sel.Location)
	if sel != in {
		s.log.Debug("selection clamped",
			zap.Int("location", in.Location),
			zap.Int("length", in.Length),
			zap.Int("len", n))
	}
	return sel
}

func (s *Session) applySel(sel Selection) {
	start := s.pos(sel.Location)
	if sel.Length == 0 {
		s.buf.SetCursor(start)
		return
	}
	s.buf.SetSelection(buffer.Range{Start: start, End: s.pos(sel.End())})
}

func (s *Session) listsDoc() lists.Doc {
	sel := s.Selection()
	return lists.Doc{Text: s.buf.Text(), Sel: lists.Sel{Start: sel.Location, End: sel.End()}}
}

func (s *Session) offset(p buffer.Pos) int { return s.buf.Offset(p) }

func (s *Session) pos(off int) buffer.Pos { return s.buf.PosAt(off) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
