package readline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuicore/vtengine/units"
)

func TestLineStateInsertAndCursorAdvance(t *testing.T) {
	ls := NewLineState("> ", 80)
	ls.InsertAtCursor("hi")
	require.Equal(t, "hi", ls.Text())
	require.Equal(t, units.ColIndex(2), ls.Cursor())
}

func TestLineStateBackspaceRemovesLastCluster(t *testing.T) {
	ls := NewLineState("> ", 80)
	ls.InsertAtCursor("abc")
	ls.Backspace()
	require.Equal(t, "ab", ls.Text())
	require.Equal(t, units.ColIndex(2), ls.Cursor())
}

func TestLineStateHomeEndMoveCursor(t *testing.T) {
	ls := NewLineState("> ", 80)
	ls.InsertAtCursor("abc")
	ls.Home()
	require.Equal(t, units.ColIndex(0), ls.Cursor())
	ls.End()
	require.Equal(t, units.ColIndex(3), ls.Cursor())
}

func TestLineStateInsertAtCursorMidline(t *testing.T) {
	ls := NewLineState("> ", 80)
	ls.InsertAtCursor("ac")
	ls.MoveLeft()
	ls.InsertAtCursor("b")
	require.Equal(t, "abc", ls.Text())
}

func TestIsPrintableExcludesNamedKeys(t *testing.T) {
	require.False(t, isPrintable("Up"))
	require.False(t, isPrintable("^C"))
	require.False(t, isPrintable("M-x"))
	require.True(t, isPrintable("a"))
}

func TestHandleKeyEnterSubmitsAndClearsLine(t *testing.T) {
	rl := &Readline{state: NewLineState("> ", 80)}
	rl.state.InsertAtCursor("echo hi")
	res, done := rl.handleKey("Enter")
	require.True(t, done)
	require.Equal(t, OutcomeLine, res.Outcome)
	require.Equal(t, "echo hi", res.Line)
	require.Equal(t, "", rl.state.Text())
	require.Equal(t, []string{"echo hi"}, rl.history)
}

func TestHandleKeyCtrlCInterrupts(t *testing.T) {
	rl := &Readline{state: NewLineState("> ", 80)}
	res, done := rl.handleKey("^C")
	require.True(t, done)
	require.Equal(t, OutcomeInterrupted, res.Outcome)
}

func TestHandleKeyCtrlDOnEmptyLineIsEof(t *testing.T) {
	rl := &Readline{state: NewLineState("> ", 80)}
	res, done := rl.handleKey("^D")
	require.True(t, done)
	require.Equal(t, OutcomeEof, res.Outcome)
}

func TestHistoryNavigation(t *testing.T) {
	rl := &Readline{state: NewLineState("> ", 80)}
	rl.AddHistoryEntry("first")
	rl.AddHistoryEntry("second")
	rl.historyPrev()
	require.Equal(t, "second", rl.state.Text())
	rl.historyPrev()
	require.Equal(t, "first", rl.state.Text())
	rl.historyNext()
	require.Equal(t, "second", rl.state.Text())
	rl.historyNext()
	require.Equal(t, "", rl.state.Text())
}
