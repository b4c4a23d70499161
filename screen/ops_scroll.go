package screen

import "github.com/tuicore/vtengine/units"

// ScrollUpBy shifts the scroll region's content up by n rows (SU), discarding
// the top n rows of the region and filling the bottom with blanks. Unlike
// InsertLinesAt/DeleteLinesAt this never depends on the cursor position.
func (b *Buffer) ScrollUpBy(n units.RowHeight) {
	region := b.ScrollRegionOrFull()
	top, bottom := int(region.Top), int(region.Bottom)
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

// ScrollDownBy shifts the scroll region's content down by n rows (SD).
func (b *Buffer) ScrollDownBy(n units.RowHeight) {
	region := b.ScrollRegionOrFull()
	top, bottom := int(region.Top), int(region.Bottom)
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

// EraseDisplay clears the whole screen (mode 2/3) or one of the two halves
// split at the cursor (mode 0: cursor to end; mode 1: start to cursor), per
// the ED control function.
type EraseDisplayMode int

const (
	EraseFromCursorToEnd EraseDisplayMode = iota
	EraseFromStartToCursor
	EraseAll
)

func (b *Buffer) EraseDisplay(mode EraseDisplayMode) {
	switch mode {
	case EraseAll:
		b.Clear()
	case EraseFromCursorToEnd:
		b.FillCharRange(b.cursorRow, b.cursorCol, b.width.AsIndex())
		for r := uint32(b.cursorRow) + 1; r < uint32(b.height); r++ {
			b.lines[r] = newBlankLine(b.width)
		}
	case EraseFromStartToCursor:
		for r := units.RowIndex(0); r < b.cursorRow; r++ {
			b.lines[r] = newBlankLine(b.width)
		}
		b.FillCharRange(b.cursorRow, 0, b.cursorCol.Add(1))
	}
}

// EraseLineMode mirrors EraseDisplayMode but scoped to the cursor's row (EL).
type EraseLineMode int

const (
	EraseLineFromCursorToEnd EraseLineMode = iota
	EraseLineFromStartToCursor
	EraseLineAll
)

func (b *Buffer) EraseLine(mode EraseLineMode) {
	switch mode {
	case EraseLineAll:
		b.FillCharRange(b.cursorRow, 0, b.width.AsIndex())
	case EraseLineFromCursorToEnd:
		b.FillCharRange(b.cursorRow, b.cursorCol, b.width.AsIndex())
	case EraseLineFromStartToCursor:
		b.FillCharRange(b.cursorRow, 0, b.cursorCol.Add(1))
	}
}
