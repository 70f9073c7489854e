package buffer

import (
	"unicode"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// MoveUnit is the distance a cursor motion covers.
type MoveUnit int

const (
	// MoveChar steps over one grapheme cluster, so a base letter and its
	// combining marks are crossed together.
	MoveChar MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

// Move is one cursor motion. With Extend set the selection grows from its
// anchor to the new cursor; otherwise the selection is dropped.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	prev, had := b.Selection()
	from := b.cursor

	if m.Extend && !had {
		b.anchor = from
	}
	b.anchored = m.Extend
	b.cursor = b.Clamp(b.target(from, m))

	if cur, has := b.Selection(); b.cursor != from || has != had || cur != prev {
		b.version++
	}
}

func (b *Buffer) target(p Pos, m Move) Pos {
	last := len(b.lines) - 1
	switch {
	case m.Dir == DirUp && m.Unit != MoveDoc:
		if p.Row == 0 {
			return p
		}
		return Pos{Row: p.Row - 1, Col: min(p.Col, len(b.lines[p.Row-1]))}
	case m.Dir == DirDown && m.Unit != MoveDoc:
		if p.Row == last {
			return p
		}
		return Pos{Row: p.Row + 1, Col: min(p.Col, len(b.lines[p.Row+1]))}
	}

	switch m.Unit {
	case MoveChar:
		return b.stepChar(p, m.Dir)
	case MoveWord:
		return b.stepWord(p, m.Dir)
	case MoveLine:
		switch m.Dir {
		case DirHome:
			return Pos{Row: p.Row}
		case DirEnd:
			return Pos{Row: p.Row, Col: len(b.lines[p.Row])}
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp:
			return Pos{}
		case DirEnd, DirDown:
			return Pos{Row: last, Col: len(b.lines[last])}
		}
	}
	return p
}

// stepChar crosses one grapheme cluster, or the line break at either end of
// a line.
func (b *Buffer) stepChar(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.Col == 0 {
			if p.Row == 0 {
				return p
			}
			return Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
		}
		prev := 0
		for _, c := range grapheme.Clusters(string(line[:p.Col]), 0) {
			prev = c.Offset
		}
		return Pos{Row: p.Row, Col: prev}
	case DirRight:
		if p.Col >= len(line) {
			if p.Row == len(b.lines)-1 {
				return p
			}
			return Pos{Row: p.Row + 1}
		}
		cs := grapheme.Clusters(string(line[p.Col:]), p.Col)
		return Pos{Row: p.Row, Col: p.Col + cs[0].Runes}
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, Col: len(line)}
	}
	return p
}

// stepWord skips whitespace and then one run of non-whitespace. At either
// end of a line it crosses the line break instead.
func (b *Buffer) stepWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	i := clampInt(p.Col, 0, len(line))
	switch dir {
	case DirLeft:
		if i == 0 {
			return b.stepChar(p, DirLeft)
		}
		for i > 0 && unicode.IsSpace(line[i-1]) {
			i--
		}
		for i > 0 && !unicode.IsSpace(line[i-1]) {
			i--
		}
	case DirRight:
		if i == len(line) {
			return b.stepChar(p, DirRight)
		}
		for i < len(line) && unicode.IsSpace(line[i]) {
			i++
		}
		for i < len(line) && !unicode.IsSpace(line[i]) {
			i++
		}
	default:
		return b.stepChar(p, dir)
	}
	return Pos{Row: p.Row, Col: i}
}
