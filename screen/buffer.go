package screen

import (
	"github.com/tuicore/vtengine/style"
	"github.com/tuicore/vtengine/units"
)

// CharacterSet names the parser's currently-selected G0/G1 charset; the
// engine tracks it but never remaps glyphs for it (spec's legacy-sequence
// exclusion list keeps DEC special graphics out of scope).
type CharacterSet int

const (
	CharsetASCII CharacterSet = iota
	CharsetDECGraphics
)

// ParserSupport holds the parser-adjacent state the offscreen buffer owns on
// the parser's behalf (spec §3): auto-wrap mode and the active character set.
type ParserSupport struct {
	AutoWrapMode bool
	CharacterSet CharacterSet
}

// ScrollRegion is an inclusive [Top, Bottom] row range (DECSTBM).
type ScrollRegion struct {
	Top    units.RowIndex
	Bottom units.RowIndex
}

// Buffer is the offscreen buffer (C5): a 2-D grid of PixelChar, the cursor,
// the saved cursor, an optional scroll region, current SGR state, parser
// auxiliary state, and queues of OSC events / DSR responses produced while
// applying ANSI bytes.
type Buffer struct {
	width  units.ColWidth
	height units.RowHeight
	lines  [][]PixelChar

	cursorRow units.RowIndex
	cursorCol units.ColIndex // may equal width: the "deferred wrap" state

	savedCursorRow units.RowIndex
	savedCursorCol units.ColIndex
	hasSavedCursor bool

	scrollRegion *ScrollRegion

	currentStyle style.TuiStyle
	parserSupport ParserSupport

	title           string
	activeHyperlink string

	oscEvents    []OscEvent
	dsrResponses []DsrResponse
}

// NewEmpty allocates a width x height buffer filled with blank Spacer cells
// and auto-wrap enabled (the VT100 default).
func NewEmpty(width units.ColWidth, height units.RowHeight) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		parserSupport: ParserSupport{AutoWrapMode: true},
	}
	b.lines = make([][]PixelChar, height)
	for i := range b.lines {
		b.lines[i] = newBlankLine(width)
	}
	return b
}

func newBlankLine(width units.ColWidth) []PixelChar {
	line := make([]PixelChar, width)
	for i := range line {
		line[i] = Spacer()
	}
	return line
}

func (b *Buffer) Size() (units.ColWidth, units.RowHeight) { return b.width, b.height }

// Clear resets every cell to a blank spacer; cursor and style are untouched.
func (b *Buffer) Clear() {
	for i := range b.lines {
		b.lines[i] = newBlankLine(b.width)
	}
}

// GetChar returns the cell at (row, col), or a blank spacer if out of range.
func (b *Buffer) GetChar(row units.RowIndex, col units.ColIndex) PixelChar {
	if uint32(row) >= uint32(b.height) || uint32(col) >= uint32(b.width) {
		return Spacer()
	}
	return b.lines[row][col]
}

// SetChar writes a cell at (row, col); out-of-range writes are dropped
// silently (spec §7: bounds errors clamp in release builds).
func (b *Buffer) SetChar(row units.RowIndex, col units.ColIndex, px PixelChar) {
	if uint32(row) >= uint32(b.height) || uint32(col) >= uint32(b.width) {
		return
	}
	b.lines[row][col] = px
}

func (b *Buffer) CurrentStyle() style.TuiStyle     { return b.currentStyle }
func (b *Buffer) SetCurrentStyle(s style.TuiStyle)  { b.currentStyle = s }

func (b *Buffer) ParserSupport() ParserSupport      { return b.parserSupport }
func (b *Buffer) SetAutoWrapMode(enabled bool)      { b.parserSupport.AutoWrapMode = enabled }

func (b *Buffer) Title() string { return b.title }
func (b *Buffer) SetTitle(t string) {
	b.title = t
	b.queueOsc(OscEvent{Kind: OscSetTitleAndTab, Title: t})
}

func (b *Buffer) ActiveHyperlink() string     { return b.activeHyperlink }
func (b *Buffer) SetActiveHyperlink(uri string) { b.activeHyperlink = uri }

// ScrollRegionOrFull returns the buffer's scroll region, defaulting to the
// full screen when none is set (spec §3).
func (b *Buffer) ScrollRegionOrFull() ScrollRegion {
	if b.scrollRegion != nil {
		return *b.scrollRegion
	}
	return ScrollRegion{Top: 0, Bottom: b.height.Sub(1).AsIndex()}
}

// SetScrollRegion sets DECSTBM bounds, clamped into [0, height), rejecting
// inverted ranges (top >= bottom) by leaving the region unset (full screen).
func (b *Buffer) SetScrollRegion(top, bottom units.RowIndex) {
	maxRow := b.height.Sub(1).AsIndex()
	if top > maxRow {
		top = maxRow
	}
	if bottom > maxRow {
		bottom = maxRow
	}
	if top >= bottom {
		b.scrollRegion = nil
		return
	}
	b.scrollRegion = &ScrollRegion{Top: top, Bottom: bottom}
}

func (b *Buffer) ClearScrollRegion() { b.scrollRegion = nil }

func (b *Buffer) queueOsc(e OscEvent)      { b.oscEvents = append(b.oscEvents, e) }
func (b *Buffer) queueDsr(r DsrResponse)   { b.dsrResponses = append(b.dsrResponses, r) }

// DrainEvents returns and clears the accumulated OSC events and DSR
// responses — called once per ApplyAnsiBytes, per spec property 7 ("responses
// are cleared after each apply_ansi_bytes call").
func (b *Buffer) DrainEvents() ([]OscEvent, []DsrResponse) {
	osc, dsr := b.oscEvents, b.dsrResponses
	b.oscEvents, b.dsrResponses = nil, nil
	return osc, dsr
}
