package screen

import "github.com/tuicore/vtengine/units"

// PutChar writes ch at the cursor using the current style, advancing the
// cursor by width columns (1 for narrow glyphs, 2 for wide ones, where the
// second cell becomes a Void placeholder). If AutoWrapMode is set and the
// cursor is sitting in the deferred-wrap column, the line wraps first; with
// AutoWrapMode off the cursor stays on the last column, so the next glyph
// overwrites that cell. A zero-width rune (a combining mark) is not stored
// and does not move the cursor.
func (b *Buffer) PutChar(ch rune, width units.ColWidth) {
	if width == 0 {
		return
	}
	if uint32(b.cursorCol) >= uint32(b.width) {
		if b.parserSupport.AutoWrapMode {
			b.wrapToNextLine()
		} else {
			b.cursorCol = b.width.Sub(1).AsIndex()
		}
	}
	cell := PlainText(ch, b.currentStyle)
	cell.Hyperlink = b.activeHyperlink
	b.SetChar(b.cursorRow, b.cursorCol, cell)
	if width == 2 {
		b.SetChar(b.cursorRow, b.cursorCol.Add(1), Void())
	}
	b.cursorCol = b.cursorCol.Add(width)
	if !b.parserSupport.AutoWrapMode && uint32(b.cursorCol) >= uint32(b.width) {
		b.cursorCol = b.width.Sub(1).AsIndex()
	}
}

func (b *Buffer) wrapToNextLine() {
	b.cursorCol = 0
	if uint32(b.cursorRow)+1 >= uint32(b.height) {
		b.ScrollUpBy(1)
		return
	}
	b.cursorRow = b.cursorRow.Add(1)
}

// Backspace moves the cursor left one column without erasing, clamped at 0.
func (b *Buffer) Backspace() {
	b.cursorCol = b.cursorCol.Sub(1)
}

// LineFeed moves to the next row, scrolling the region if already at its
// bottom; it never changes the column. ansiparser calls it alone for LF and
// pairs it with CarriageReturn for NEL (ESC E).
func (b *Buffer) LineFeed() {
	region := b.ScrollRegionOrFull()
	if b.cursorRow == region.Bottom {
		b.ScrollUpBy(1)
		return
	}
	if uint32(b.cursorRow)+1 >= uint32(b.height) {
		return
	}
	b.cursorRow = b.cursorRow.Add(1)
}

func (b *Buffer) CarriageReturn() { b.cursorCol = 0 }

func (b *Buffer) Tab(tabStop units.ColWidth) {
	if tabStop == 0 {
		tabStop = 8
	}
	next := (uint32(b.cursorCol)/uint32(tabStop) + 1) * uint32(tabStop)
	maxCol := uint32(b.width) - 1
	if next > maxCol {
		next = maxCol
	}
	b.cursorCol = units.ColIndex(next)
}
