package backend

import (
	"io"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/tuicore/vtengine/render"
	"github.com/tuicore/vtengine/style"
)

// LibBacked emits the same op stream as Direct but through
// charmbracelet/x/ansi's cursor-movement helpers and lipgloss's style
// renderer, the way bubbletea's standardRenderer builds its frame
// (charmbracelet-bubbletea/standard_renderer.go: ansi.CursorPosition,
// ansi.CursorUp, ansi.EraseLineRight) instead of hand-formatting escapes.
// Its style sequences come from lipgloss and differ from Direct's, so the
// two do not produce byte-identical output for ops that set a style.
type LibBacked struct {
	local localData
}

func NewLibBacked() *LibBacked { return &LibBacked{} }

func (l *LibBacked) Paint(w io.Writer, ops []render.Op) error {
	var out strings.Builder
	for _, op := range ops {
		switch op.Kind {
		case render.OpMoveCursor:
			if l.local.moveNeeded(op.Row, op.Col) {
				out.WriteString(xansi.CursorPosition(op.Col+1, op.Row+1))
				l.local.recordMove(op.Row, op.Col)
			}
		case render.OpSetStyle:
			out.WriteString(lipglossSGR(op.Style))
		case render.OpWriteRune:
			out.WriteRune(op.Char)
			l.local.cursorCol++
		case render.OpHideCursor:
			out.WriteString(xansi.HideCursor)
		case render.OpShowCursor:
			out.WriteString(xansi.ShowCursor)
		case render.OpResetAttrs:
			out.WriteString(xansi.Reset)
		}
	}
	_, err := io.WriteString(w, out.String())
	return err
}

// lipglossSGR renders a TuiStyle's opening SGR sequence via lipgloss,
// extracting just the escape prefix lipgloss.Style.Render would normally
// wrap around text (lipgloss always pairs an opening sequence with a
// trailing reset; Paint instead emits one style change per run of cells and
// closes with OpResetAttrs at end of line/frame, so only the prefix is
// used).
func lipglossSGR(s style.TuiStyle) string {
	st := newLipglossStyle(s)
	rendered := st.Render("\x00")
	if idx := strings.IndexByte(rendered, 0); idx >= 0 {
		return rendered[:idx]
	}
	return rendered
}
