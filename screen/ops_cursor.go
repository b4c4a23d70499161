package screen

import "github.com/tuicore/vtengine/units"

// CursorToPosition moves the cursor to an absolute (row, col), clamping into
// the buffer (spec §4.3 clamping policy: callers pass already-decremented
// 0-based coordinates here; the 1-based-to-0-based decrement happens in the
// parser operation modules, package ansiparser).
func (b *Buffer) CursorToPosition(row units.RowIndex, col units.ColIndex) {
	b.cursorRow = clampRow(row, b.height)
	b.cursorCol = clampColInclusive(col, b.width)
}

func (b *Buffer) CursorToLineStart() { b.cursorCol = 0 }

// CursorUp moves the cursor up n rows, never crossing the top of the scroll
// region (spec property 8: DECSTBM bound).
func (b *Buffer) CursorUp(n units.RowHeight) {
	region := b.ScrollRegionOrFull()
	newRow := b.cursorRow.Sub(n)
	if newRow < region.Top {
		newRow = region.Top
	}
	b.cursorRow = newRow
}

// CursorDown moves the cursor down n rows, never crossing the bottom of the
// scroll region.
func (b *Buffer) CursorDown(n units.RowHeight) {
	region := b.ScrollRegionOrFull()
	newRow := b.cursorRow.Add(n)
	if newRow > region.Bottom {
		newRow = region.Bottom
	}
	b.cursorRow = newRow
}

// CursorForward moves the cursor right n columns, clamped to the last
// column (never the deferred-wrap column beyond width, since this is an
// explicit CSI C, not a print-driven wrap).
func (b *Buffer) CursorForward(n units.ColWidth) {
	newCol := b.cursorCol.Add(n)
	maxCol := b.width.Sub(1).AsIndex()
	if newCol > maxCol {
		newCol = maxCol
	}
	b.cursorCol = newCol
}

func (b *Buffer) CursorBackward(n units.ColWidth) {
	b.cursorCol = b.cursorCol.Sub(n)
}

func (b *Buffer) CursorPosition() (units.RowIndex, units.ColIndex) {
	return b.cursorRow, b.cursorCol
}

// SetCursorColDeferredWrap sets the cursor column allowing it to equal width
// exactly (the "deferred wrap" state between printing the last column and
// actually wrapping — spec §3).
func (b *Buffer) SetCursorColDeferredWrap(col units.ColIndex) {
	if uint32(col) > uint32(b.width) {
		col = b.width.AsIndex()
	}
	b.cursorCol = col
}

func (b *Buffer) SaveCursorPosition() {
	b.savedCursorRow, b.savedCursorCol = b.cursorRow, b.cursorCol
	b.hasSavedCursor = true
}

func (b *Buffer) RestoreCursorPosition() {
	if !b.hasSavedCursor {
		return
	}
	b.cursorRow, b.cursorCol = b.savedCursorRow, b.savedCursorCol
}

func clampRow(row units.RowIndex, height units.RowHeight) units.RowIndex {
	max := height.Sub(1).AsIndex()
	if row > max {
		return max
	}
	return row
}

// clampColInclusive clamps into [0, width-1]; used for absolute positioning
// which (unlike print-driven wrap) never needs the deferred-wrap column.
func clampColInclusive(col units.ColIndex, width units.ColWidth) units.ColIndex {
	if width == 0 {
		return 0
	}
	max := width.Sub(1).AsIndex()
	if col > max {
		return max
	}
	return col
}
