package screen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuicore/vtengine/units"
)

func newBuf() *Buffer { return NewEmpty(units.ColWidth(8), units.RowHeight(4)) }

func TestCursorUpClampsToScrollRegionTop(t *testing.T) {
	b := newBuf()
	b.SetScrollRegion(1, 3)
	b.CursorToPosition(3, 0)
	b.CursorUp(10)
	row, _ := b.CursorPosition()
	require.Equal(t, units.RowIndex(1), row)
}

func TestScrollUpByShiftsRegionAndBlanksBottom(t *testing.T) {
	b := newBuf()
	b.SetChar(0, 0, PlainText('a', b.CurrentStyle()))
	b.SetChar(1, 0, PlainText('b', b.CurrentStyle()))
	b.ScrollUpBy(1)
	require.Equal(t, 'b', b.GetChar(0, 0).Char)
	require.True(t, b.GetChar(3, 0).IsBlank())
}

func TestPutCharCarriesActiveHyperlink(t *testing.T) {
	b := newBuf()
	b.QueueHyperlink("https://example.com", "")
	b.PutChar('x', 1)
	require.Equal(t, "https://example.com", b.GetChar(0, 0).Hyperlink)

	b.SetActiveHyperlink("")
	b.PutChar('y', 1)
	require.Empty(t, b.GetChar(0, 1).Hyperlink)
}

func TestInsertLinesAtPushesRegionBottomOut(t *testing.T) {
	b := newBuf()
	b.SetChar(1, 0, PlainText('x', b.CurrentStyle()))
	b.InsertLinesAt(1, 1)
	require.True(t, b.GetChar(1, 0).IsBlank())
	require.Equal(t, 'x', b.GetChar(2, 0).Char)
}

func TestDeleteLinesAtPullsRowsUp(t *testing.T) {
	b := newBuf()
	b.SetChar(2, 0, PlainText('y', b.CurrentStyle()))
	b.DeleteLinesAt(1, 1)
	require.Equal(t, 'y', b.GetChar(1, 0).Char)
	require.True(t, b.GetChar(3, 0).IsBlank())
}

func TestInsertCharsAtCursorShiftsRight(t *testing.T) {
	b := newBuf()
	b.SetChar(0, 0, PlainText('a', b.CurrentStyle()))
	b.SetChar(0, 1, PlainText('b', b.CurrentStyle()))
	b.CursorToPosition(0, 0)
	b.InsertCharsAtCursor(1)
	require.True(t, b.GetChar(0, 0).IsBlank())
	require.Equal(t, 'a', b.GetChar(0, 1).Char)
}

func TestPutCharWrapsAtRightEdge(t *testing.T) {
	b := NewEmpty(units.ColWidth(2), units.RowHeight(2))
	b.PutChar('a', 1)
	b.PutChar('b', 1)
	b.PutChar('c', 1)
	row, col := b.CursorPosition()
	require.Equal(t, units.RowIndex(1), row)
	require.Equal(t, units.ColIndex(1), col)
	require.Equal(t, 'c', b.GetChar(1, 0).Char)
}

func TestDrainEventsClearsQueues(t *testing.T) {
	b := newBuf()
	b.SetTitle("hi")
	osc, _ := b.DrainEvents()
	require.Len(t, osc, 1)
	osc2, _ := b.DrainEvents()
	require.Empty(t, osc2)
}

func TestPoolReusesMatchingDimensions(t *testing.T) {
	p := NewPool()
	b1 := p.Get(8, 4)
	b1.SetChar(0, 0, PlainText('z', b1.CurrentStyle()))
	p.Put(b1)
	b2 := p.Get(8, 4)
	require.True(t, b2.GetChar(0, 0).IsBlank())
}
