// Package render implements the compositor (spec §4.5, C7): diffing two
// offscreen buffer frames into a minimal ordered sequence of render ops, the
// way cli.Renderer.Render diffs rendered-cell frames, but emitting an
// abstract op stream instead of writing bytes directly — so either terminal
// backend (package backend) can consume the same diff.
package render

import "github.com/tuicore/vtengine/style"

// OpKind enumerates the operations a backend must support to paint a frame.
type OpKind uint8

const (
	OpMoveCursor OpKind = iota
	OpSetStyle
	OpWriteRune
	OpHideCursor
	OpShowCursor
	OpResetAttrs
)

// Op is one unit of the render diff. Only the fields relevant to Kind are
// populated; the zero value of the others is meaningless.
type Op struct {
	Kind  OpKind
	Row   int
	Col   int
	Style style.TuiStyle
	Char  rune
}

// OpBuffer is a reusable slice of Op, pooled per frame to avoid a fresh
// allocation on every Diff call (spec §4.5: "the compositor must not
// allocate per cell").
type OpBuffer struct {
	ops []Op
}

func (b *OpBuffer) reset() { b.ops = b.ops[:0] }

func (b *OpBuffer) append(op Op) { b.ops = append(b.ops, op) }

// Ops returns the accumulated operations for the most recent Diff call.
func (b *OpBuffer) Ops() []Op { return b.ops }
