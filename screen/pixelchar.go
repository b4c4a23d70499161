// Package screen implements the offscreen buffer (spec §4.3/§3 C5): a 2-D
// grid of styled cells with cursor, saved cursor, scroll region, and the
// mutation operations the VT100 parser (package ansiparser) drives.
package screen

import "github.com/tuicore/vtengine/style"

// PixelChar is one grid cell: a blank placeholder, the forbidden-to-overwrite
// right half of a double-width glyph, or a styled character.
type PixelChar struct {
	Kind  PixelKind
	Char  rune
	Style style.TuiStyle
	// Hyperlink, when non-empty, is the URI an OSC 8 sequence attached to
	// this character (spec §4.4 OSC hyperlink handling).
	Hyperlink string
}

type PixelKind uint8

const (
	PixelSpacer PixelKind = iota
	PixelVoid
	PixelPlainText
)

// Spacer returns a blank cell contributing no style.
func Spacer() PixelChar { return PixelChar{Kind: PixelSpacer} }

// Void returns a placeholder for the right half of a double-width glyph.
func Void() PixelChar { return PixelChar{Kind: PixelVoid} }

// PlainText returns a styled character cell.
func PlainText(ch rune, st style.TuiStyle) PixelChar {
	return PixelChar{Kind: PixelPlainText, Char: ch, Style: st}
}

func (p PixelChar) IsBlank() bool {
	return p.Kind == PixelSpacer || (p.Kind == PixelPlainText && p.Char == ' ' && p.Style == style.TuiStyle{})
}

func (p PixelChar) Equal(other PixelChar) bool {
	if p.Kind != other.Kind {
		return false
	}
	if p.Kind != PixelPlainText {
		return true
	}
	return p.Char == other.Char && p.Style.Equal(other.Style) && p.Hyperlink == other.Hyperlink
}
