package gcstring

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuicore/vtengine/units"
)

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo wörld", "日本語", "a😀b"} {
		g := New(s)
		var joined string
		for _, seg := range g.Segments() {
			joined += s[seg.StartByte:seg.EndByte]
		}
		require.Equal(t, s, joined)

		var widthSum units.ColWidth
		for _, seg := range g.Segments() {
			widthSum = widthSum.Add(seg.DisplayWidth)
		}
		require.Equal(t, g.DisplayWidth(), widthSum)
	}
}

func TestSegmentAtDisplayCol(t *testing.T) {
	g := New("日本語")
	seg, ok := g.SegmentAtDisplayCol(0)
	require.True(t, ok)
	require.Equal(t, units.ColWidth(2), seg.DisplayWidth)

	require.True(t, g.IsInMiddleOfGrapheme(1))
	require.False(t, g.IsInMiddleOfGrapheme(0))
}

func TestInsertDeleteInverse(t *testing.T) {
	g := New("helloworld")
	inserted, width := g.InsertAtDisplayCol(units.ColIndex(5), " ")
	require.Equal(t, "hello world", inserted.String())
	require.Equal(t, units.ColWidth(1), width)

	back := inserted.DeleteAtDisplayCol(units.ColIndex(5))
	require.Equal(t, g.String(), back.String())
}

func TestSplitAtDisplayCol(t *testing.T) {
	g := New("hello")
	left, right, ok := g.SplitAtDisplayCol(units.ColIndex(2))
	require.True(t, ok)
	require.Equal(t, "he", left.String())
	require.Equal(t, "llo", right.String())
}

func TestClipNarrowerThanRequestedAtWideBoundary(t *testing.T) {
	g := New("日本語") // each char is width 2: cols [0-2) [2-4) [4-6)
	clipped := g.Clip(units.ColIndex(1), units.ColWidth(4))
	// col 1 falls mid-cluster for the first char, so that cluster is excluded
	require.Equal(t, "本", clipped)
}

func TestTruncEndToFit(t *testing.T) {
	g := New("hello")
	require.Equal(t, "hel", g.TruncEndToFit(units.ColWidth(3)))
}
