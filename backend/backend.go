// Package backend implements the two terminal-output backends (spec §4.5,
// C9): a direct ANSI emitter writing escape sequences by hand, the way
// cli.Renderer.Render does, and a library-backed emitter built on
// charmbracelet/x/ansi and charmbracelet/lipgloss. Both consume the same
// render.Op stream, but their output is not byte-identical: style changes
// are written as Direct's hand-built SGR sequences in one and as lipgloss's
// rendered prefix in the other.
package backend

import (
	"io"

	"github.com/tuicore/vtengine/render"
)

// Paint is the capability every backend exposes: consume an op stream and
// write the corresponding bytes to w.
type Paint interface {
	Paint(w io.Writer, ops []render.Op) error
}

// localData is the shadow cursor state both backend variants track so they
// only emit a cursor-move sequence when the position actually changes. Style
// is not tracked here: every OpSetStyle is written out as given.
type localData struct {
	haveCursor     bool
	cursorRow      int
	cursorCol      int
	cursorHidden   bool
	haveStyleState bool
}

func (l *localData) moveNeeded(row, col int) bool {
	return !l.haveCursor || l.cursorRow != row || l.cursorCol != col
}

func (l *localData) recordMove(row, col int) {
	l.haveCursor = true
	l.cursorRow, l.cursorCol = row, col
}
