package backend

import (
	"fmt"
	"io"
	"strings"

	"github.com/tuicore/vtengine/render"
	"github.com/tuicore/vtengine/style"
)

// Direct emits raw ANSI escape sequences by hand, the way
// cli.Renderer.Render builds its SGR sequence string directly rather than
// going through a library.
type Direct struct {
	local localData
}

func NewDirect() *Direct { return &Direct{} }

func (d *Direct) Paint(w io.Writer, ops []render.Op) error {
	var out strings.Builder
	for _, op := range ops {
		switch op.Kind {
		case render.OpMoveCursor:
			if d.local.moveNeeded(op.Row, op.Col) {
				fmt.Fprintf(&out, "\x1b[%d;%dH", op.Row+1, op.Col+1)
				d.local.recordMove(op.Row, op.Col)
			}
		case render.OpSetStyle:
			out.WriteString(sgrSequence(op.Style))
		case render.OpWriteRune:
			out.WriteRune(op.Char)
			d.local.cursorCol++
		case render.OpHideCursor:
			out.WriteString("\x1b[?25l")
		case render.OpShowCursor:
			out.WriteString("\x1b[?25h")
		case render.OpResetAttrs:
			out.WriteString("\x1b[0m")
		}
	}
	_, err := io.WriteString(w, out.String())
	return err
}

// sgrSequence renders a TuiStyle as one combined SGR escape, always opening
// with a reset to avoid inheriting un-cleared attributes from the previous
// cell (cli.Renderer.Render does the same with its needsReset tracking).
func sgrSequence(s style.TuiStyle) string {
	codes := []string{"0"}
	if s.Has(style.AttrBold) {
		codes = append(codes, "1")
	}
	if s.Has(style.AttrDim) {
		codes = append(codes, "2")
	}
	if s.Has(style.AttrItalic) {
		codes = append(codes, "3")
	}
	if s.Has(style.AttrUnderline) {
		codes = append(codes, "4")
	}
	if s.Has(style.AttrBlink) {
		codes = append(codes, "5")
	}
	if s.Has(style.AttrInvert) {
		codes = append(codes, "7")
	}
	if s.Has(style.AttrHidden) {
		codes = append(codes, "8")
	}
	if s.Has(style.AttrStrikethrough) {
		codes = append(codes, "9")
	}
	if s.Fg != nil {
		codes = append(codes, s.Fg.SGRCode(true))
	}
	if s.Bg != nil {
		codes = append(codes, s.Bg.SGRCode(false))
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}
