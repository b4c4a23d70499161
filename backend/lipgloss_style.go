package backend

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuicore/vtengine/style"
)

// newLipglossStyle converts a TuiStyle into the equivalent lipgloss.Style,
// grounded on the ALH477-infgo dashboard's lipgloss.NewStyle().Bold(...).
// Foreground(...) chaining pattern.
func newLipglossStyle(s style.TuiStyle) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Has(style.AttrBold) {
		st = st.Bold(true)
	}
	if s.Has(style.AttrDim) {
		st = st.Faint(true)
	}
	if s.Has(style.AttrItalic) {
		st = st.Italic(true)
	}
	if s.Has(style.AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Has(style.AttrBlink) {
		st = st.Blink(true)
	}
	if s.Has(style.AttrInvert) {
		st = st.Reverse(true)
	}
	if s.Has(style.AttrStrikethrough) {
		st = st.Strikethrough(true)
	}
	if s.Fg != nil {
		st = st.Foreground(lipglossColor(*s.Fg))
	}
	if s.Bg != nil {
		st = st.Background(lipglossColor(*s.Bg))
	}
	if s.Has(style.AttrHidden) {
		// lipgloss has no conceal attribute; approximate by matching the
		// foreground to the background so the glyph renders invisible.
		if s.Bg != nil {
			st = st.Foreground(lipglossColor(*s.Bg))
		} else {
			st = st.Foreground(lipgloss.Color("0"))
		}
	}
	return st
}

func lipglossColor(c style.TuiColor) lipgloss.Color {
	switch c.Kind {
	case style.ColorBasic:
		return lipgloss.Color(fmt.Sprintf("%d", int(c.Basic)))
	case style.ColorANSI256:
		return lipgloss.Color(fmt.Sprintf("%d", c.Index))
	case style.ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	default:
		return lipgloss.Color("")
	}
}
