// Package readline implements a single-line editor that coexists with an
// unbounded number of background writers (spec §4.7, C10): LineState owns
// the current input and cursor, Readline drives key handling and history,
// and SharedWriter lets background producers interleave their own output
// with the live prompt line without corrupting either.
package readline

import (
	"github.com/tuicore/vtengine/gcstring"
	"github.com/tuicore/vtengine/units"
)

// LineState owns the current input line, the prompt, and the bookkeeping
// needed to redraw around interleaved background writes.
type LineState struct {
	prompt string
	line   gcstring.GCString
	cursor units.ColIndex
	width  units.ColWidth

	// lastLineCompleted/lastLineLength track the most recent foreign
	// (SharedWriter) write so printDataAndFlush knows whether it must
	// move up a row before re-rendering the prompt.
	lastLineCompleted bool
	lastLineLength    units.ColWidth
}

// NewLineState builds an empty line editor for the given prompt and
// terminal width.
func NewLineState(prompt string, width units.ColWidth) *LineState {
	return &LineState{
		prompt:             prompt,
		width:              width,
		lastLineCompleted:  true,
	}
}

func (ls *LineState) Prompt() string        { return ls.prompt }
func (ls *LineState) SetPrompt(p string)    { ls.prompt = p }
func (ls *LineState) Text() string          { return ls.line.String() }
func (ls *LineState) Cursor() units.ColIndex { return ls.cursor }
func (ls *LineState) SetWidth(w units.ColWidth) { ls.width = w }

func (ls *LineState) clear() {
	ls.line = gcstring.GCString{}
	ls.cursor = 0
}

// InsertAtCursor inserts s at the cursor position and advances the cursor
// by the inserted display width (C3's InsertAtDisplayCol).
func (ls *LineState) InsertAtCursor(s string) {
	newLine, inserted := ls.line.InsertAtDisplayCol(ls.cursor, s)
	ls.line = newLine
	ls.cursor = ls.cursor.Add(inserted)
}

// MoveLeft/MoveRight/Home/End reposition the cursor without touching text.
func (ls *LineState) MoveLeft() {
	if ls.cursor == 0 {
		return
	}
	if seg, ok := ls.line.SegmentAtDisplayCol(ls.cursor - 1); ok {
		ls.cursor = seg.StartDisplayCol
		return
	}
	ls.cursor = ls.cursor.Sub(1)
}

func (ls *LineState) MoveRight() {
	if seg, ok := ls.line.SegmentAtDisplayCol(ls.cursor); ok {
		ls.cursor = seg.StartDisplayCol.Add(seg.DisplayWidth)
	}
}

func (ls *LineState) Home() { ls.cursor = 0 }
func (ls *LineState) End()  { ls.cursor = ls.line.DisplayWidth().AsIndex() }

// Backspace deletes the cluster immediately before the cursor.
func (ls *LineState) Backspace() {
	if ls.cursor == 0 {
		return
	}
	ls.MoveLeft()
	ls.line = ls.line.DeleteAtDisplayCol(ls.cursor)
}

// Delete removes the cluster at the cursor (forward delete).
func (ls *LineState) Delete() {
	ls.line = ls.line.DeleteAtDisplayCol(ls.cursor)
}
