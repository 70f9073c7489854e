package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Tab, ShiftTab     key.Binding

	// Cancel drops the ghost suggestion.
	Cancel key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	NextMatch, PrevMatch       key.Binding
	ZoomIn, ZoomOut, ZoomReset key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent / accept")),
		ShiftTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss suggestion")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		NextMatch: key.NewBinding(key.WithKeys("ctrl+n", "f3"), key.WithHelp("ctrl+n", "next match")),
		PrevMatch: key.NewBinding(key.WithKeys("ctrl+p", "shift+f3"), key.WithHelp("ctrl+p", "previous match")),

		ZoomIn:    key.NewBinding(key.WithKeys("alt+=", "alt++"), key.WithHelp("alt+=", "zoom in")),
		ZoomOut:   key.NewBinding(key.WithKeys("alt+-"), key.WithHelp("alt+-", "zoom out")),
		ZoomReset: key.NewBinding(key.WithKeys("alt+0"), key.WithHelp("alt+0", "reset zoom")),
	}
}

// ShortHelp lists the bindings worth showing in a one-line hint.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.ShiftTab, k.Undo, k.NextMatch}
}

// FullHelp groups every binding into columns for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.WordLeft, k.WordRight, k.Home, k.End, k.DocStart, k.DocEnd},
		{k.Enter, k.Tab, k.ShiftTab, k.Cancel, k.Undo, k.Redo},
		{k.Copy, k.Cut, k.Paste, k.NextMatch, k.PrevMatch},
		{k.ZoomIn, k.ZoomOut, k.ZoomReset},
	}
}
