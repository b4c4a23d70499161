package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuicore/vtengine/render"
	"github.com/tuicore/vtengine/screen"
	"github.com/tuicore/vtengine/style"
	"github.com/tuicore/vtengine/units"
)

// TestDiffWideGlyphDoesNotClobberFollowingCell reproduces the scenario
// spec.md §4.5 calls out: a double-width glyph must advance the shadow
// cursor by 2, not 1. With the old off-by-one shadow cursor, a second diff
// that only changes the wide glyph's style (leaving its Void and the next
// cell untouched) would skip the MoveCursor before the Void's blank write,
// landing it one column over and overwriting the unrelated cell that
// follows.
func TestDiffWideGlyphDoesNotClobberFollowingCell(t *testing.T) {
	buf := screen.NewEmpty(units.ColWidth(10), units.RowHeight(1))
	buf.PutChar('字', 2) // columns 0-1
	buf.PutChar('x', 1) // column 2

	comp := render.New()
	first := render.GetOpBuffer()
	comp.Diff(buf, first)
	render.PutOpBuffer(first)

	// Rewrite only the wide glyph with a different style; column 2's 'x'
	// cell is untouched.
	buf.CursorToPosition(0, 0)
	bold := style.TuiStyle{Attrs: style.AttrBold}
	buf.SetCurrentStyle(bold)
	buf.PutChar('字', 2)

	second := render.GetOpBuffer()
	defer render.PutOpBuffer(second)
	comp.Diff(buf, second)

	for _, op := range second.Ops() {
		require.NotEqual(t, 1, op.Col, "the Void half of a wide glyph must never be individually addressed or written")
		if op.Kind == render.OpWriteRune {
			require.NotEqual(t, ' ', op.Char, "no blank write should land on the unchanged 'x' cell at column 2")
		}
	}
}
