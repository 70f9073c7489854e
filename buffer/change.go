package buffer

// ChangeSource identifies what produced a content change.
type ChangeSource uint8

const (
	// ChangeSourceEdit covers typing, deletion and range replacement.
	ChangeSourceEdit ChangeSource = iota
	// ChangeSourceHistory marks undo and redo.
	ChangeSourceHistory
	// ChangeSourceReload marks a wholesale replacement from outside the
	// editing session (for example the file changed on disk).
	ChangeSourceReload
)

// Change describes the latest content change as one replacement in rune
// offsets: [Start, End) of the old text became Text.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64

	Start int
	End   int
	Text  string
}

// LastChange returns the most recent content change.
func (b *Buffer) LastChange() (Change, bool) {
	return b.lastChange, b.hasLastChange
}

// recordChange stores the smallest replacement that turns before into the
// current text.
func (b *Buffer) recordChange(src ChangeSource, versionBefore uint64, before string) {
	old, cur := []rune(before), []rune(b.Text())
	p := 0
	for p < len(old) && p < len(cur) && old[p] == cur[p] {
		p++
	}
	s := 0
	for s < len(old)-p && s < len(cur)-p && old[len(old)-1-s] == cur[len(cur)-1-s] {
		s++
	}
	b.lastChange = Change{
		Source:        src,
		VersionBefore: versionBefore,
		VersionAfter:  b.version,
		Start:         p,
		End:           len(old) - s,
		Text:          string(cur[p : len(cur)-s]),
	}
	b.hasLastChange = true
}
