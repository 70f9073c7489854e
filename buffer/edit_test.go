package buffer

import "testing"

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})
	v := b.Version()

	b.InsertText("X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Col: 1}, End: Pos{Col: 4}}) // "ell"

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_InsertText_Unicode(t *testing.T) {
	b := New("", Options{})
	b.InsertText("π")
	b.InsertText("テ")

	if got, want := b.Text(), "πテ"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_RemovesWholeCluster(t *testing.T) {
	b := New("ae\u0301", Options{})
	b.SetCursor(Pos{Col: 3})

	b.DeleteBackward()
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	b.DeleteBackward()
	b.DeleteBackward()
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if b.Version() != 3 {
		t.Fatalf("version=%d, want 3 (no-op delete must not bump)", b.Version())
	}
}

func TestBuffer_DeleteBackward_JoinsLinesAtSOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1, Col: 0})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteForward_JoinsLinesAtEOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, Col: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteSelection_SpanningMultipleLines(t *testing.T) {
	b := New("ab\ncd\nef", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 2, Col: 1}})

	b.DeleteSelection()
	if got, want := b.Text(), "af"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Delete_AtBoundsIsNoOp(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()

	b.DeleteBackward()
	b.SetCursor(Pos{Col: 2})
	v = b.Version()
	b.DeleteForward()
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
	if b.CanUndo() {
		t.Fatalf("no-op deletes must not record undo")
	}
}

func TestBuffer_ReplaceRuneRange_ClampsAndRecordsOneUndo(t *testing.T) {
	b := New("- [ ] task\nnext", Options{})

	if ok := b.ReplaceRuneRange(3, 4, "x"); !ok {
		t.Fatalf("expected effective edit")
	}
	if got, want := b.Text(), "- [x] task\nnext"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if ok := b.ReplaceRuneRange(100, 200, "!"); !ok {
		t.Fatalf("expected clamped append")
	}
	if got, want := b.Text(), "- [x] task\nnext!"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	_ = b.Undo()
	_ = b.Undo()
	if got, want := b.Text(), "- [ ] task\nnext"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
	if b.CanUndo() {
		t.Fatalf("expected exactly two undo steps")
	}
}

func TestBuffer_LastChange_RuneRange(t *testing.T) {
	b := New("héllo\nwörld", Options{})
	if _, ok := b.LastChange(); ok {
		t.Fatalf("fresh buffer must have no change")
	}

	b.ReplaceRuneRange(7, 9, "OR")
	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected a change")
	}
	want := Change{Source: ChangeSourceEdit, VersionBefore: 0, VersionAfter: 1, Start: 7, End: 9, Text: "OR"}
	if ch != want {
		t.Fatalf("change=%+v, want %+v", ch, want)
	}

	_ = b.Undo()
	ch, _ = b.LastChange()
	if ch.Source != ChangeSourceHistory || ch.Start != 7 || ch.End != 9 || ch.Text != "ör" {
		t.Fatalf("undo change=%+v", ch)
	}
}

func TestBuffer_Reset_ClampsCursorAndSelection(t *testing.T) {
	b := New("line one\nline two\nline three", Options{})
	b.SetSelection(Range{Start: Pos{Row: 1, Col: 2}, End: Pos{Row: 2, Col: 8}})

	b.Reset("short")
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 5}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected clamped selection to stay active")
	}
	if got, want := r, (Range{Start: Pos{Row: 0, Col: 2}, End: Pos{Row: 0, Col: 5}}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}

	b.SetSelection(Range{Start: Pos{Col: 1}, End: Pos{Col: 4}})
	b.Reset("a")
	if _, ok := b.Selection(); ok {
		t.Fatalf("selection collapsed by clamping must be inactive")
	}
	if b.CanUndo() {
		t.Fatalf("reset must drop history")
	}
	ch, ok := b.LastChange()
	if !ok || ch.Source != ChangeSourceReload {
		t.Fatalf("last change: got %+v, want reload", ch)
	}
}
