// Package attr models visual attribute sets and the per-character attribute
// map produced by a styling pass.
//
// Attribute resolution is last-writer-wins per attribute key: applying a
// span only overrides the keys it carries, so a later italic span over a
// bold range leaves the weight alone.
package attr

// Key identifies one attribute in an attribute set.
type Key uint16

const (
	KeyWeight Key = 1 << iota
	KeySlant
	KeySize
	KeyMono
	KeyFg
	KeyBg
	KeyStrike
	KeyUnderline
	KeyHidden

	KeyAll = KeyWeight | KeySlant | KeySize | KeyMono | KeyFg | KeyBg | KeyStrike | KeyUnderline | KeyHidden
)

type Weight uint8

const (
	WeightRegular Weight = iota
	WeightBold
)

type Slant uint8

const (
	SlantUpright Slant = iota
	SlantItalic
)

// Color is a semantic color tag. The rendering surface resolves tags to
// concrete colors through its theme.
type Color string

const (
	ColorNone         Color = ""
	ColorBase         Color = "base"
	ColorDim          Color = "dim"
	ColorAccent       Color = "accent"
	ColorLink         Color = "link"
	ColorCode         Color = "code"
	ColorCodeBg       Color = "codeBg"
	ColorQuote        Color = "quote"
	ColorMarker       Color = "marker"
	ColorKeyword      Color = "keyword"
	ColorType         Color = "type"
	ColorString       Color = "string"
	ColorNumber       Color = "number"
	ColorComment      Color = "comment"
	ColorFunction     Color = "function"
	ColorTag          Color = "tag"
	ColorAttribute    Color = "attribute"
	ColorProperty     Color = "property"
	ColorSearchMatch  Color = "searchMatch"
	ColorSearchActive Color = "searchActive"
)

// Attrs is a bag of visual attributes. Set records which keys carry a value;
// keys outside Set are ignored when merging.
type Attrs struct {
	Set Key

	Weight    Weight
	Slant     Slant
	Size      float64 // absolute font size after scale and zoom
	Mono      bool
	Fg        Color
	Bg        Color
	Strike    bool
	Underline bool
	Hidden    bool // glyphs keep their layout space but are not drawn
}

func (a Attrs) Has(k Key) bool { return a.Set&k != 0 }

func (a Attrs) WithWeight(w Weight) Attrs {
	a.Set |= KeyWeight
	a.Weight = w
	return a
}

func (a Attrs) WithSlant(s Slant) Attrs {
	a.Set |= KeySlant
	a.Slant = s
	return a
}

func (a Attrs) WithSize(size float64) Attrs {
	a.Set |= KeySize
	a.Size = size
	return a
}

func (a Attrs) WithMono(on bool) Attrs {
	a.Set |= KeyMono
	a.Mono = on
	return a
}

func (a Attrs) WithFg(c Color) Attrs {
	a.Set |= KeyFg
	a.Fg = c
	return a
}

func (a Attrs) WithBg(c Color) Attrs {
	a.Set |= KeyBg
	a.Bg = c
	return a
}

func (a Attrs) WithStrike(on bool) Attrs {
	a.Set |= KeyStrike
	a.Strike = on
	return a
}

func (a Attrs) WithUnderline(on bool) Attrs {
	a.Set |= KeyUnderline
	a.Underline = on
	return a
}

func (a Attrs) WithHidden(on bool) Attrs {
	a.Set |= KeyHidden
	a.Hidden = on
	return a
}

// Bold and Italic are shorthands used by the styling passes.
func Bold() Attrs   { return Attrs{}.WithWeight(WeightBold) }
func Italic() Attrs { return Attrs{}.WithSlant(SlantItalic) }
func Dim() Attrs    { return Attrs{}.WithFg(ColorDim) }

// Merge returns a with every key present in over replaced by over's value.
func (a Attrs) Merge(over Attrs) Attrs {
	if over.Set&KeyWeight != 0 {
		a.Weight = over.Weight
	}
	if over.Set&KeySlant != 0 {
		a.Slant = over.Slant
	}
	if over.Set&KeySize != 0 {
		a.Size = over.Size
	}
	if over.Set&KeyMono != 0 {
		a.Mono = over.Mono
	}
	if over.Set&KeyFg != 0 {
		a.Fg = over.Fg
	}
	if over.Set&KeyBg != 0 {
		a.Bg = over.Bg
	}
	if over.Set&KeyStrike != 0 {
		a.Strike = over.Strike
	}
	if over.Set&KeyUnderline != 0 {
		a.Underline = over.Underline
	}
	if over.Set&KeyHidden != 0 {
		a.Hidden = over.Hidden
	}
	a.Set |= over.Set
	return a
}

// Span is a styled range: a half-open rune range [Start, End) with the
// attributes to apply over it.
type Span struct {
	Start int
	End   int
	Attrs Attrs
}

// Shift returns s moved by off runes.
func (s Span) Shift(off int) Span {
	s.Start += off
	s.End += off
	return s
}
