package boundscheck

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuicore/vtengine/units"
)

func TestCheckArray(t *testing.T) {
	require.Equal(t, Within, CheckArray(units.ColIndex(4), units.ColWidth(5)))
	require.Equal(t, Overflowed, CheckArray(units.ColIndex(5), units.ColWidth(5)))
}

func TestCheckCursorAtEndIsNotOverflow(t *testing.T) {
	require.Equal(t, AtEnd, CheckCursor(units.ColIndex(5), units.ColWidth(5)))
	require.Equal(t, Beyond, CheckCursor(units.ColIndex(6), units.ColWidth(5)))
	require.Equal(t, AtStart, CheckCursor(units.ColIndex(0), units.ColWidth(5)))
	require.Equal(t, CursorWithin, CheckCursor(units.ColIndex(2), units.ColWidth(5)))
}

func TestCheckRange(t *testing.T) {
	require.Equal(t, Underflowed, CheckRange(units.ColIndex(1), units.ColIndex(3), units.ColWidth(4)))
	require.Equal(t, RangeWithin, CheckRange(units.ColIndex(3), units.ColIndex(3), units.ColWidth(4)))
	require.Equal(t, RangeOverflowed, CheckRange(units.ColIndex(7), units.ColIndex(3), units.ColWidth(4)))
}
