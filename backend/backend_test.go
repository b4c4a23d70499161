package backend

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuicore/vtengine/render"
)

func TestDirectPaintWritesMoveAndRune(t *testing.T) {
	var buf bytes.Buffer
	d := NewDirect()
	err := d.Paint(&buf, []render.Op{
		{Kind: render.OpMoveCursor, Row: 2, Col: 3},
		{Kind: render.OpWriteRune, Char: 'x'},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "\x1b[3;4H")
	require.Contains(t, buf.String(), "x")
}

func TestDirectSkipsRedundantMove(t *testing.T) {
	var buf bytes.Buffer
	d := NewDirect()
	d.Paint(&buf, []render.Op{{Kind: render.OpMoveCursor, Row: 0, Col: 0}})
	buf.Reset()
	d.Paint(&buf, []render.Op{{Kind: render.OpMoveCursor, Row: 0, Col: 0}})
	require.Empty(t, buf.String())
}

func TestLibBackedPaintWritesMoveAndRune(t *testing.T) {
	var buf bytes.Buffer
	l := NewLibBacked()
	err := l.Paint(&buf, []render.Op{
		{Kind: render.OpMoveCursor, Row: 2, Col: 3},
		{Kind: render.OpWriteRune, Char: 'x'},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "x")
}
