package screen

import "github.com/tuicore/vtengine/units"

// InsertCharsAtCursor shifts the n cells from the cursor rightward to make
// room, filling the vacated cells with the current style's blank (ICH).
// Cells pushed past the right edge are discarded.
func (b *Buffer) InsertCharsAtCursor(n units.ColWidth) {
	if uint32(b.cursorRow) >= uint32(b.height) {
		return
	}
	line := b.lines[b.cursorRow]
	start := int(b.cursorCol)
	if start > len(line) {
		start = len(line)
	}
	shift := int(n)
	if shift > len(line)-start {
		shift = len(line) - start
	}
	copy(line[start+shift:], line[start:len(line)-shift])
	blank := b.blankCell()
	for i := start; i < start+shift && i < len(line); i++ {
		line[i] = blank
	}
}

// DeleteCharsInLine removes n cells starting at the cursor, sliding the
// remainder of the line left and filling the vacated tail with blanks (DCH).
func (b *Buffer) DeleteCharsInLine(n units.ColWidth) {
	if uint32(b.cursorRow) >= uint32(b.height) {
		return
	}
	line := b.lines[b.cursorRow]
	start := int(b.cursorCol)
	if start > len(line) {
		start = len(line)
	}
	count := int(n)
	if count > len(line)-start {
		count = len(line) - start
	}
	copy(line[start:], line[start+count:])
	blank := b.blankCell()
	for i := len(line) - count; i < len(line); i++ {
		if i >= start {
			line[i] = blank
		}
	}
}

// FillCharRange overwrites [fromCol, toCol) on row with blank cells carrying
// the current style (ECH/EL use this for erase operations).
func (b *Buffer) FillCharRange(row units.RowIndex, fromCol, toCol units.ColIndex) {
	if uint32(row) >= uint32(b.height) {
		return
	}
	line := b.lines[row]
	from, to := int(fromCol), int(toCol)
	if to > len(line) {
		to = len(line)
	}
	blank := b.blankCell()
	for i := from; i < to; i++ {
		line[i] = blank
	}
}

func (b *Buffer) blankCell() PixelChar {
	return PixelChar{Kind: PixelPlainText, Char: ' ', Style: b.currentStyle}
}
