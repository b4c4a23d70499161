package render

import (
	"github.com/tuicore/vtengine/screen"
	"github.com/tuicore/vtengine/style"
	"github.com/tuicore/vtengine/units"
)

// Compositor tracks the previously-painted frame so Diff can emit only the
// cells that changed, the way cli.Renderer kept lastCells for differential
// rendering.
type Compositor struct {
	prev       [][]screen.PixelChar
	prevCursor [2]int
	havePrev   bool

	shadowStyle style.TuiStyle
	haveStyle   bool
}

// New creates an empty compositor; its first Diff against any buffer is
// always a full repaint.
func New() *Compositor { return &Compositor{} }

// Invalidate forces the next Diff to be a full repaint (e.g. after a resize
// or backend reconnect).
func (c *Compositor) Invalidate() {
	c.havePrev = false
	c.haveStyle = false
}

// Diff compares buf against the last frame painted and appends the minimal
// op sequence required to bring the terminal to buf's state into dst.
// Cursor movement ops are only emitted when a cell actually needs writing,
// and OpSetStyle is only emitted when the style differs from the shadow
// state left by the previous op (spec §4.5's "SGR-optimized" requirement,
// grounded on cli.Renderer.Render's currentFg/currentBold bookkeeping).
func (c *Compositor) Diff(buf *screen.Buffer, dst *OpBuffer) {
	width, height := buf.Size()
	needsFull := !c.havePrev || len(c.prev) != int(height)

	newFrame := make([][]screen.PixelChar, height)
	lastRow, lastCol := -1, -1

	for row := units.RowIndex(0); uint32(row) < uint32(height); row++ {
		newFrame[row] = make([]screen.PixelChar, width)
		rowChanged := needsFull
		if !needsFull && len(c.prev[row]) != int(width) {
			rowChanged = true
		}

		for col := units.ColIndex(0); uint32(col) < uint32(width); {
			cell := buf.GetChar(row, col)
			newFrame[row][col] = cell

			// A PixelPlainText cell immediately followed by a Void is a
			// double-width glyph; the Void carries no content of its own
			// and the real terminal cursor already landed two columns over
			// once the glyph was written, so it is never diffed or written
			// as its own op (spec §4.5).
			wide := cell.Kind == screen.PixelPlainText &&
				uint32(col)+1 < uint32(width) &&
				buf.GetChar(row, col.Add(1)).Kind == screen.PixelVoid
			if wide {
				newFrame[row][col.Add(1)] = buf.GetChar(row, col.Add(1))
			}

			changed := rowChanged
			if !changed {
				prevCell := c.prev[row][col]
				if !prevCell.Equal(cell) {
					changed = true
				}
			}
			if !changed {
				col++
				continue
			}

			if int(row) != lastRow || int(col) != lastCol {
				dst.append(Op{Kind: OpMoveCursor, Row: int(row), Col: int(col)})
			}

			if cell.Kind == screen.PixelPlainText {
				if !c.haveStyle || !c.shadowStyle.Equal(cell.Style) {
					dst.append(Op{Kind: OpSetStyle, Style: cell.Style})
					c.shadowStyle = cell.Style
					c.haveStyle = true
				}
				dst.append(Op{Kind: OpWriteRune, Char: cell.Char})
			} else {
				dst.append(Op{Kind: OpWriteRune, Char: ' '})
			}

			if wide {
				lastRow, lastCol = int(row), int(col)+2
				col = col.Add(2)
			} else {
				lastRow, lastCol = int(row), int(col)+1
				col++
			}
		}
	}

	cursorRow, cursorCol := buf.CursorPosition()
	if !c.havePrev || c.prevCursor[0] != int(cursorRow) || c.prevCursor[1] != int(cursorCol) {
		dst.append(Op{Kind: OpMoveCursor, Row: int(cursorRow), Col: int(cursorCol)})
	}

	c.prev = newFrame
	c.prevCursor = [2]int{int(cursorRow), int(cursorCol)}
	c.havePrev = true
}
