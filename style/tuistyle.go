package style

// Attr is a bitset of SGR attributes.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrStrikethrough
	AttrInvert
	AttrBlink
	AttrHidden
)

// ID addresses a style within a Stylesheet.
type ID uint32

// TuiStyle composes an optional foreground/background color with an
// attribute bitset. Composition is monoidal (spec §3): `Some` on the right
// replaces `Some` on the left for colors, and attribute bits are OR-ed.
type TuiStyle struct {
	Fg      *TuiColor
	Bg      *TuiColor
	Attrs   Attr
	StyleID ID
	HasID   bool
	Padding int
}

// Compose merges other onto s: other's explicit fg/bg win, attributes union.
func (s TuiStyle) Compose(other TuiStyle) TuiStyle {
	out := s
	if other.Fg != nil {
		out.Fg = other.Fg
	}
	if other.Bg != nil {
		out.Bg = other.Bg
	}
	out.Attrs |= other.Attrs
	if other.HasID {
		out.StyleID = other.StyleID
		out.HasID = true
	}
	if other.Padding != 0 {
		out.Padding = other.Padding
	}
	return out
}

func (s TuiStyle) Has(a Attr) bool { return s.Attrs&a != 0 }

func (s TuiStyle) WithFg(c TuiColor) TuiStyle { s.Fg = &c; return s }
func (s TuiStyle) WithBg(c TuiColor) TuiStyle { s.Bg = &c; return s }
func (s TuiStyle) WithAttr(a Attr) TuiStyle   { s.Attrs |= a; return s }

// Equal compares two styles for the compositor's cell-diff shadow state.
func (s TuiStyle) Equal(other TuiStyle) bool {
	if s.Attrs != other.Attrs {
		return false
	}
	if !colorEqual(s.Fg, other.Fg) {
		return false
	}
	return colorEqual(s.Bg, other.Bg)
}

func colorEqual(a, b *TuiColor) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// Stylesheet maps a style ID to a resolved TuiStyle, per spec §3's "a
// stylesheet is a set of styles addressable by id".
type Stylesheet struct {
	styles map[ID]TuiStyle
}

func NewStylesheet() *Stylesheet { return &Stylesheet{styles: make(map[ID]TuiStyle)} }

func (s *Stylesheet) Put(id ID, st TuiStyle) { s.styles[id] = st }

func (s *Stylesheet) Get(id ID) (TuiStyle, bool) {
	st, ok := s.styles[id]
	return st, ok
}

// Resolve returns the style a cell should render with: if the cell's style
// carries a stylesheet id, composing the looked-up style onto a blank base
// and then the cell's own inline attributes on top (inline always wins,
// matching Compose's right-wins rule).
func (s *Stylesheet) Resolve(cellStyle TuiStyle) TuiStyle {
	if !cellStyle.HasID {
		return cellStyle
	}
	base, ok := s.Get(cellStyle.StyleID)
	if !ok {
		return cellStyle
	}
	return base.Compose(cellStyle)
}
