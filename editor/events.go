package editor

import (
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/session"
)

// ChangeEvent reports the editor state after an update that changed it.
type ChangeEvent struct {
	Version   uint64
	Selection session.Selection

	// Text is the whole document.
	Text string

	// Edit is the latest content replacement since the previous event. It is
	// unset when only the selection moved.
	Edit    buffer.Change
	HasEdit bool
}

func buildChangeEvent(s *session.Session, since uint64) ChangeEvent {
	ev := ChangeEvent{
		Version:   s.Version(),
		Selection: s.Selection(),
		Text:      s.Text(),
	}
	if ch, ok := s.Buffer().LastChange(); ok && ch.VersionAfter > since {
		ev.Edit, ev.HasEdit = ch, true
	}
	return ev
}
