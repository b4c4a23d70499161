// Package boundscheck gives a name to the three distinct ways a position can
// relate to a length that the engine otherwise confuses constantly: "is this
// a valid array slot", "is this a valid cursor position (which may sit one
// past the last character)", and "is this inside a sub-range of a larger
// span". Using three separate result types means a cursor position can never
// accidentally be checked against the array-overflow contract, and vice
// versa.
package boundscheck

import "github.com/tuicore/vtengine/units"

// ArrayOverflow describes whether an index is a valid array slot.
type ArrayOverflow int

const (
	Within ArrayOverflow = iota
	Overflowed
)

// CheckArray returns Within when idx < length, Overflowed otherwise.
func CheckArray(idx units.ColIndex, length units.ColWidth) ArrayOverflow {
	if uint32(idx) < uint32(length) {
		return Within
	}
	return Overflowed
}

// CursorPosition describes where a cursor sits relative to [0, length].
// A cursor may legally sit one past the last character (AtEnd) — that is
// not an overflow, unlike ArrayOverflow's stricter contract.
type CursorPosition int

const (
	AtStart CursorPosition = iota
	CursorWithin
	AtEnd
	Beyond
)

// CheckCursor classifies idx against a buffer of the given length.
func CheckCursor(idx units.ColIndex, length units.ColWidth) CursorPosition {
	switch {
	case idx == 0:
		return AtStart
	case uint32(idx) < uint32(length):
		return CursorWithin
	case uint32(idx) == uint32(length):
		return AtEnd
	default:
		return Beyond
	}
}

// RangePosition describes where an index sits relative to a half-open
// viewport [start, start+length).
type RangePosition int

const (
	RangeWithin RangePosition = iota
	Underflowed
	RangeOverflowed
)

// CheckRange classifies idx against the viewport [start, start+length).
func CheckRange(idx units.ColIndex, start units.ColIndex, length units.ColWidth) RangePosition {
	if idx < start {
		return Underflowed
	}
	if uint32(idx) >= uint32(start)+uint32(length) {
		return RangeOverflowed
	}
	return RangeWithin
}

// CheckRowRange is the row-domain equivalent of CheckRange, used for scroll
// region membership tests.
func CheckRowRange(idx units.RowIndex, start units.RowIndex, length units.RowHeight) RangePosition {
	if idx < start {
		return Underflowed
	}
	if uint32(idx) >= uint32(start)+uint32(length) {
		return RangeOverflowed
	}
	return RangeWithin
}
