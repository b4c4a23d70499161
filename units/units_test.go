package units

import "testing"

import "github.com/stretchr/testify/require"

func TestRowIndexArithmetic(t *testing.T) {
	r := RowIndex(5)
	require.Equal(t, RowIndex(8), r.Add(RowHeight(3)))
	require.Equal(t, RowIndex(2), r.Sub(RowHeight(3)))
	require.Equal(t, RowIndex(0), RowIndex(1).Sub(RowHeight(5)))
}

func TestRowIndexDiff(t *testing.T) {
	require.Equal(t, RowHeight(4), RowIndex(2).Diff(RowIndex(6)))
	require.Equal(t, RowHeight(0), RowIndex(6).Diff(RowIndex(2)))
}

func TestPercentClampsAndTruncates(t *testing.T) {
	require.Equal(t, 0, NewPercent(-5).Value())
	require.Equal(t, 100, NewPercent(150).Value())
	p := NewPercent(33)
	require.Equal(t, ColWidth(33), p.ApplyToWidth(ColWidth(100)))
	require.Equal(t, 33, p.Apply(100))
	// truncation, not rounding
	require.Equal(t, ColWidth(0), NewPercent(1).ApplyToWidth(ColWidth(50)))
}

func TestColWidthSaturatesAtZero(t *testing.T) {
	require.Equal(t, ColWidth(0), ColWidth(2).Sub(ColWidth(10)))
}
