package ansiparser

import (
	"github.com/tuicore/vtengine/screen"
	"github.com/tuicore/vtengine/units"
	"github.com/tuicore/vtengine/vtlog"
)

func (p *Parser) executeCSI(final byte) {
	switch final {
	case 'A':
		p.buf.CursorUp(units.RowHeight(p.getParam(0, 1)))
	case 'B':
		p.buf.CursorDown(units.RowHeight(p.getParam(0, 1)))
	case 'C':
		p.buf.CursorForward(units.ColWidth(p.getParam(0, 1)))
	case 'D':
		p.buf.CursorBackward(units.ColWidth(p.getParam(0, 1)))
	case 'E':
		p.buf.CursorDown(units.RowHeight(p.getParam(0, 1)))
		p.buf.CarriageReturn()
	case 'F':
		p.buf.CursorUp(units.RowHeight(p.getParam(0, 1)))
		p.buf.CarriageReturn()
	case 'G':
		row, _ := p.buf.CursorPosition()
		p.buf.CursorToPosition(row, units.ColIndex(p.getParam(0, 1)-1))
	case 'H', 'f':
		row := units.RowIndex(p.getParam(0, 1) - 1)
		col := units.ColIndex(p.getParam(1, 1) - 1)
		p.buf.CursorToPosition(row, col)
	case 'd':
		_, col := p.buf.CursorPosition()
		p.buf.CursorToPosition(units.RowIndex(p.getParam(0, 1)-1), col)

	case 'J':
		switch p.getParam(0, 0) {
		case 0:
			p.buf.EraseDisplay(screen.EraseFromCursorToEnd)
		case 1:
			p.buf.EraseDisplay(screen.EraseFromStartToCursor)
		case 2, 3:
			p.buf.Clear()
			p.buf.CursorToPosition(0, 0)
		}
	case 'K':
		switch p.getParam(0, 0) {
		case 0:
			p.buf.EraseLine(screen.EraseLineFromCursorToEnd)
		case 1:
			p.buf.EraseLine(screen.EraseLineFromStartToCursor)
		case 2:
			p.buf.EraseLine(screen.EraseLineAll)
		}

	case 'L':
		row, _ := p.buf.CursorPosition()
		p.buf.InsertLinesAt(row, units.RowHeight(p.getParam(0, 1)))
	case 'M':
		row, _ := p.buf.CursorPosition()
		p.buf.DeleteLinesAt(row, units.RowHeight(p.getParam(0, 1)))
	case 'P':
		p.buf.DeleteCharsInLine(units.ColWidth(p.getParam(0, 1)))
	case '@':
		p.buf.InsertCharsAtCursor(units.ColWidth(p.getParam(0, 1)))
	case 'X':
		row, col := p.buf.CursorPosition()
		width, _ := p.buf.Size()
		end := col.Add(units.ColWidth(p.getParam(0, 1)))
		if maxCol := width.AsIndex(); end > maxCol {
			end = maxCol
		}
		p.buf.FillCharRange(row, col, end)

	case 'S':
		p.buf.ScrollUpBy(units.RowHeight(p.getParam(0, 1)))
	case 'T':
		p.buf.ScrollDownBy(units.RowHeight(p.getParam(0, 1)))

	case 'm':
		p.executeSGR()

	case 'h':
		if p.csiPrivate == '?' {
			p.executePrivateMode(true)
		}
	case 'l':
		if p.csiPrivate == '?' {
			p.executePrivateMode(false)
		}

	case 's':
		p.buf.SaveCursorPosition()
	case 'u':
		p.buf.RestoreCursorPosition()

	case 'n':
		switch p.getParam(0, 0) {
		case 5:
			p.buf.RequestTerminalStatus()
		case 6:
			p.buf.RequestCursorPosition()
		}

	case 'r':
		if len(p.csiParams) == 0 {
			p.buf.ClearScrollRegion()
			return
		}
		top := units.RowIndex(p.getParam(0, 1) - 1)
		bottom := units.RowIndex(p.getParam(1, 1) - 1)
		p.buf.SetScrollRegion(top, bottom)

	default:
		// Malformed or unimplemented sequences are dropped silently
		// (the parser never fails); logged at debug only.
		vtlog.L().Debugw("ansiparser: unrecognized CSI final byte", "final", string(final))
	}
}

func (p *Parser) executePrivateMode(set bool) {
	for _, param := range p.csiParams {
		switch param {
		case 7:
			p.buf.SetAutoWrapMode(set)
		case 25, 1049, 2004:
			// Cursor visibility, alternate screen, and bracketed paste are
			// backend/presentation concerns; the offscreen buffer tracks
			// neither (no corresponding PixelChar-grid effect).
		}
	}
}
