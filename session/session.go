// Package session owns one open document: its buffer, selection, search
// query, zoom and ghost suggestion. Every mutation goes through a Session so
// that the derived presentation (Frame) is always recomputed from the buffer.
//
// A Session is not safe for concurrent use. Each editor owns its own.
package session

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iw2rmb/quill/attr"
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/checkbox"
	"github.com/iw2rmb/quill/ghost"
	"github.com/iw2rmb/quill/lists"
	"github.com/iw2rmb/quill/mdstyle"
)

type Options struct {
	Logger *zap.Logger

	Style   mdstyle.Options
	Lists   lists.Options
	Ghost   ghost.Options
	NoGhost bool
	History int // undo depth, zero means the buffer default
}

// Selection is a half-open character range [Location, Location+Length).
type Selection struct {
	Location int
	Length   int
}

func (s Selection) End() int { return s.Location + s.Length }

// Frame is the presentation derived from one buffer state.
type Frame struct {
	Attrs       *attr.Map
	Checkboxes  []checkbox.Token
	Decorations []checkbox.Decoration

	Ghost    ghost.Suggestion
	HasGhost bool

	Matches   []mdstyle.Range
	Active    int // index into Matches, -1 without a hit
	ScrollTo  mdstyle.Range
	HasScroll bool

	Version uint64
}

type frameKey struct {
	version uint64
	query   string
	active  int
	zoom    float64
	ghost   ghost.Suggestion
	hasGh   bool
}

type Session struct {
	id  string
	log *zap.Logger

	buf    *buffer.Buffer
	styler *mdstyle.Styler
	lists  *lists.Engine

	ghostOpt   ghost.Options
	ghostOff   bool
	ghostCache ghost.Cache
	ghost      ghost.Suggestion
	hasGhost   bool

	query  string
	active int
	zoom   float64

	frame    Frame
	frameKey frameKey
	hasFrame bool
}

// New opens text in a fresh session with the cursor at the start.
func New(text string, opt Options) *Session {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	s := &Session{
		id:       id,
		log:      log.With(zap.String("session", id)),
		buf:      buffer.New(text, buffer.Options{HistoryLimit: opt.History}),
		styler:   mdstyle.New(opt.Style),
		lists:    lists.New(opt.Lists),
		ghostOpt: opt.Ghost,
		ghostOff: opt.NoGhost,
		zoom:     1,
	}
	s.log.Debug("session opened", zap.Int("runes", s.buf.Len()))
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Text() string { return s.buf.Text() }

// Len returns the document length in runes.
func (s *Session) Len() int { return s.buf.Len() }

// Version changes whenever text, cursor or selection change.
func (s *Session) Version() uint64 { return s.buf.Version() }

// Buffer exposes the underlying buffer for read access and cursor motion.
// Text mutations must go through the Session.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// Outline lists the document headings.
func (s *Session) Outline() []mdstyle.Entry { return mdstyle.Outline(s.buf.Text()) }

// Restyle returns the frame for the current state. It never modifies the
// buffer, cursor or selection, and calling it again without an intervening
// change returns the same frame.
func (s *Session) Restyle() Frame {
	key := frameKey{
		version: s.buf.Version(),
		query:   s.query,
		active:  s.active,
		zoom:    s.zoom,
		ghost:   s.ghost,
		hasGh:   s.hasGhost,
	}
	if s.hasFrame && key == s.frameKey {
		return s.frame
	}

	start := time.Now()
	res := s.styler.Style(mdstyle.Input{
		Text:        s.buf.Text(),
		Query:       s.query,
		ActiveMatch: s.active,
		Zoom:        s.zoom,
	})
	f := Frame{
		Attrs:       res.Map,
		Checkboxes:  res.Checkboxes,
		Decorations: checkbox.Decorations(res.Checkboxes),
		Ghost:       s.ghost,
		HasGhost:    s.hasGhost,
		Matches:     res.Matches,
		Active:      res.Active,
		Version:     key.version,
	}
	f.ScrollTo, f.HasScroll = res.ScrollTo()

	s.frame, s.frameKey, s.hasFrame = f, key, true
	s.log.Debug("restyled",
		zap.Uint64("version", key.version),
		zap.Int("runes", res.Map.Len()),
		zap.Int("matches", len(res.Matches)),
		zap.Duration("took", time.Since(start)))
	return f
}
