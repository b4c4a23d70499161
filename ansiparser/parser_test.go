package ansiparser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuicore/vtengine/screen"
	"github.com/tuicore/vtengine/style"
	"github.com/tuicore/vtengine/units"
)

func newTestBuffer() (*screen.Buffer, *Parser) {
	buf := screen.NewEmpty(units.ColWidth(10), units.RowHeight(5))
	return buf, New(buf)
}

func TestPrintAdvancesCursor(t *testing.T) {
	buf, p := newTestBuffer()
	p.ApplyAnsiBytes([]byte("hi"))
	row, col := buf.CursorPosition()
	require.Equal(t, units.RowIndex(0), row)
	require.Equal(t, units.ColIndex(2), col)
	require.Equal(t, 'h', buf.GetChar(0, 0).Char)
	require.Equal(t, 'i', buf.GetChar(0, 1).Char)
}

func TestCursorPositionCSI(t *testing.T) {
	buf, p := newTestBuffer()
	p.ApplyAnsiBytes([]byte("\x1b[3;4H"))
	row, col := buf.CursorPosition()
	require.Equal(t, units.RowIndex(2), row)
	require.Equal(t, units.ColIndex(3), col)
}

func TestScrollRegionClampsCursorUp(t *testing.T) {
	buf, p := newTestBuffer()
	p.ApplyAnsiBytes([]byte("\x1b[2;4r"))
	p.ApplyAnsiBytes([]byte("\x1b[4;1H"))
	p.ApplyAnsiBytes([]byte("\x1b[10A"))
	row, _ := buf.CursorPosition()
	require.Equal(t, units.RowIndex(1), row)
}

func TestSGRBasicAndTrueColor(t *testing.T) {
	buf, p := newTestBuffer()
	p.ApplyAnsiBytes([]byte("\x1b[1;31mA"))
	cell := buf.GetChar(0, 0)
	require.True(t, cell.Style.Has(style.AttrBold))
	require.NotNil(t, cell.Style.Fg)

	p.ApplyAnsiBytes([]byte("\x1b[38;2;10;20;30mB"))
	cell = buf.GetChar(0, 1)
	r, g, b := cell.Style.Fg.ResolveRGB()
	require.Equal(t, uint8(10), r)
	require.Equal(t, uint8(20), g)
	require.Equal(t, uint8(30), b)
}

func TestSGRDimAndHidden(t *testing.T) {
	buf, p := newTestBuffer()
	p.ApplyAnsiBytes([]byte("\x1b[2;8mA"))
	cell := buf.GetChar(0, 0)
	require.True(t, cell.Style.Has(style.AttrDim))
	require.True(t, cell.Style.Has(style.AttrHidden))

	p.ApplyAnsiBytes([]byte("\x1b[22;28mB"))
	cell = buf.GetChar(0, 1)
	require.False(t, cell.Style.Has(style.AttrDim))
	require.False(t, cell.Style.Has(style.AttrHidden))
}

func TestEraseLineAll(t *testing.T) {
	buf, p := newTestBuffer()
	p.ApplyAnsiBytes([]byte("hello"))
	p.ApplyAnsiBytes([]byte("\x1b[2K"))
	require.True(t, buf.GetChar(0, 0).IsBlank())
}

func TestDsrCursorPositionResponse(t *testing.T) {
	_, p := newTestBuffer()
	p.ApplyAnsiBytes([]byte("\x1b[5;5H"))
	_, dsr := p.ApplyAnsiBytes([]byte("\x1b[6n"))
	require.Len(t, dsr, 1)
	require.Equal(t, []byte("\x1b[5;5R"), dsr[0].Bytes())
}

func TestOscTitle(t *testing.T) {
	buf, p := newTestBuffer()
	osc, _ := p.ApplyAnsiBytes([]byte("\x1b]0;hello\x07"))
	require.Len(t, osc, 1)
	require.Equal(t, "hello", buf.Title())
}

func TestInsertCharsInLine(t *testing.T) {
	buf, p := newTestBuffer()
	p.ApplyAnsiBytes([]byte("abcde"))
	p.ApplyAnsiBytes([]byte("\x1b[1;2H\x1b[2@"))
	require.Equal(t, 'a', buf.GetChar(0, 0).Char)
	require.True(t, buf.GetChar(0, 1).IsBlank())
	require.Equal(t, 'b', buf.GetChar(0, 3).Char)
}

// TestPrintWidthMatchesUniseg covers runeWidth deferring to uniseg instead
// of a hand-rolled range table: a combining acute accent has display width
// 0 and must not advance the cursor, while a wide CJK ideograph advances it
// by 2, matching gcstring's own width computation for the same runes.
func TestPrintWidthMatchesUniseg(t *testing.T) {
	buf, p := newTestBuffer()
	p.ApplyAnsiBytes([]byte("é")) // "e" + combining acute accent
	_, col := buf.CursorPosition()
	require.Equal(t, units.ColIndex(1), col)

	buf2, p2 := newTestBuffer()
	p2.ApplyAnsiBytes([]byte("字"))
	_, col2 := buf2.CursorPosition()
	require.Equal(t, units.ColIndex(2), col2)
}
