// Package editor provides a Bubble Tea markdown editing surface backed by a
// session.
//
// The package is responsible for key and mouse handling, viewport behavior,
// and painting the session's attribute map with lipgloss, including the
// checkbox glyph overlay and ghost suggestion text.
package editor
