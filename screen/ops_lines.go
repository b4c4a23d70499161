package screen

import "github.com/tuicore/vtengine/units"

// InsertLinesAt inserts n blank lines at row, shifting the rows below it
// (down to the bottom of the scroll region) downward; lines pushed past the
// bottom of the region are discarded (IL).
func (b *Buffer) InsertLinesAt(row units.RowIndex, n units.RowHeight) {
	region := b.ScrollRegionOrFull()
	if row < region.Top || row > region.Bottom {
		return
	}
	top, bottom := int(row), int(region.Bottom)
	count := int(n)
	if count > bottom-top+1 {
		count = bottom - top + 1
	}
	for i := bottom; i >= top+count; i-- {
		b.lines[i] = b.lines[i-count]
	}
	for i := top; i < top+count; i++ {
		b.lines[i] = newBlankLine(b.width)
	}
}

// DeleteLinesAt removes n lines starting at row, sliding the rows below
// upward within the scroll region and filling the vacated bottom rows with
// blanks (DL).
func (b *Buffer) DeleteLinesAt(row units.RowIndex, n units.RowHeight) {
	region := b.ScrollRegionOrFull()
	if row < region.Top || row > region.Bottom {
		return
	}
	top, bottom := int(row), int(region.Bottom)
	count := int(n)
	if count > bottom-top+1 {
		count = bottom - top + 1
	}
	for i := top; i <= bottom-count; i++ {
		b.lines[i] = b.lines[i+count]
	}
	for i := bottom - count + 1; i <= bottom; i++ {
		b.lines[i] = newBlankLine(b.width)
	}
}
