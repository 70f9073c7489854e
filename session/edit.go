package session

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/quill/checkbox"
	"github.com/iw2rmb/quill/ghost"
	"github.com/iw2rmb/quill/lists"
)

// InsertText types or pastes text over the selection, then recomputes the
// ghost suggestion for the new cursor.
func (s *Session) InsertText(text string) {
	s.clearGhost()
	s.buf.InsertText(text)
	s.suggest()
}

// Newline runs list continuation. It reports false when the cursor line is
// not a list item; the caller then inserts a plain line break.
func (s *Session) Newline() bool {
	s.clearGhost()
	return s.structural("newline", s.lists.Newline)
}

// Backspace clears a marker-only list line. It reports false when the
// default deletion applies.
func (s *Session) Backspace() bool {
	s.clearGhost()
	return s.structural("backspace", s.lists.Backspace)
}

// Tab accepts an active ghost suggestion, otherwise indents list lines or a
// multi-line selection. It reports false when the default tab applies.
func (s *Session) Tab() bool {
	if s.AcceptGhost() {
		return true
	}
	return s.structural("tab", s.lists.Tab)
}

// ShiftTab outdents the selected or current lines. It is always consumed.
func (s *Session) ShiftTab() bool {
	s.clearGhost()
	s.structural("shift-tab", s.lists.ShiftTab)
	return true
}

// InsertNewline inserts a plain line break.
func (s *Session) InsertNewline() {
	s.clearGhost()
	s.buf.InsertNewline()
}

// DeleteBackward is the default backspace.
func (s *Session) DeleteBackward() {
	s.clearGhost()
	s.buf.DeleteBackward()
}

// DeleteForward is the default delete.
func (s *Session) DeleteForward() {
	s.clearGhost()
	s.buf.DeleteForward()
}

func (s *Session) structural(name string, h func(lists.Doc) (lists.Doc, bool)) bool {
	before := s.listsDoc()
	after, ok := h(before)
	if !ok {
		return false
	}
	e := lists.Diff(before.Text, after.Text)
	if !e.Empty() {
		s.buf.ReplaceRuneRange(e.Start, e.End, e.Text)
	}
	s.applySel(s.clampSelection(Selection{Location: after.Sel.Start, Length: after.Sel.End - after.Sel.Start}))
	s.log.Debug("structural edit",
		zap.String("action", name),
		zap.Int("at", e.Start),
		zap.Int("removed", e.End-e.Start),
		zap.Int("inserted", len([]rune(e.Text))))
	return true
}

// Click handles a pointer press at a document offset. A press on a checkbox
// bracket toggles it as one undoable edit and keeps the selection; anything
// else places the cursor. It reports whether a checkbox was toggled.
func (s *Session) Click(offset int) bool {
	s.clearGhost()
	f := s.Restyle()
	tok, ok := checkbox.HitTest(f.Checkboxes, offset)
	if !ok {
		s.SetSelection(Selection{Location: offset})
		return false
	}

	sel := s.Selection()
	e := checkbox.Toggle(tok)
	s.buf.ReplaceRuneRange(e.Start, e.End, e.Text)
	s.applySel(s.clampSelection(sel))
	s.log.Debug("checkbox toggled", zap.Int("at", tok.State), zap.Bool("checked", !tok.Checked))
	return true
}

// Undo reverts the last content edit.
func (s *Session) Undo() bool {
	s.clearGhost()
	return s.buf.Undo()
}

// Redo reapplies the last undone edit.
func (s *Session) Redo() bool {
	s.clearGhost()
	return s.buf.Redo()
}

// Reload replaces the document after an external change. The selection is
// clamped to the new content and the undo history is dropped.
func (s *Session) Reload(text string) {
	s.clearGhost()
	s.ghostCache.Reset()
	before := s.buf.Len()
	s.buf.Reset(text)
	s.applySel(s.clampSelection(s.Selection()))
	s.log.Info("reloaded", zap.Int("before", before), zap.Int("after", s.buf.Len()))
}

// Ghost returns the active suggestion.
func (s *Session) Ghost() (ghost.Suggestion, bool) { return s.ghost, s.hasGhost }

// AcceptGhost inserts the active suggestion at the cursor as one undoable
// edit. It reports false when there is none.
func (s *Session) AcceptGhost() bool {
	if !s.hasGhost {
		return false
	}
	g := s.ghost
	s.clearGhost()
	if s.Selection() != (Selection{Location: g.At}) {
		return false
	}
	s.buf.InsertText(g.Suffix)
	return true
}

// CancelGhost drops the active suggestion. It reports whether there was one.
func (s *Session) CancelGhost() bool {
	had := s.hasGhost
	s.clearGhost()
	return had
}

func (s *Session) clearGhost() {
	s.ghost, s.hasGhost = ghost.Suggestion{}, false
}

func (s *Session) suggest() {
	if s.ghostOff {
		return
	}
	sel := s.Selection()
	if sel.Length != 0 {
		return
	}
	key := ghost.Key{DocID: s.id, Version: s.buf.Version(), Cursor: sel.Location}
	g, ok, hit := s.ghostCache.Get(key)
	if !hit {
		g, ok = ghost.Suggest(s.buf.Text(), sel.Location, s.ghostOpt)
		s.ghostCache.Put(key, g, ok)
	}
	s.ghost, s.hasGhost = g, ok
}
