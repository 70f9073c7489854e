package editor

// Config configures the editor Model.
type Config struct {
	Theme  Theme
	KeyMap KeyMap

	// TabWidth is the number of cells a tab advances to. Zero means 4.
	TabWidth int

	// ReadOnly disables every mutation; movement, search and zoom still work.
	ReadOnly bool

	Scroll ScrollMode

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard

	// OnChange is called after an update that changed the text or selection.
	OnChange func(ChangeEvent)
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return 4
	}
	return c.TabWidth
}

// ScrollMode decides whether the mouse wheel may scroll away from the caret.
type ScrollMode int

const (
	// ScrollFree lets the wheel move the viewport on its own.
	ScrollFree ScrollMode = iota
	// ScrollPinned ignores the wheel; only caret movement scrolls.
	ScrollPinned
)

// Clipboard is the host's system clipboard. Errors are swallowed by the
// editor and leave the document untouched.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
