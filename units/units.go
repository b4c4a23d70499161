// Package units provides zero-cost typed wrappers over unsigned integers for
// the coordinate domains the engine juggles: grid rows/columns, grapheme
// segments, and UTF-8 byte offsets. Keeping each domain as its own type
// makes illegal arithmetic (adding a width to an unrelated index, or mixing
// a byte offset with a segment index) a compile error instead of a runtime
// off-by-one.
package units

// RowIndex is a 0-based row position in a grid.
type RowIndex uint32

// ColIndex is a 0-based column position in a grid.
type ColIndex uint32

// RowHeight is a count of rows.
type RowHeight uint32

// ColWidth is a count of columns.
type ColWidth uint32

// Add returns the index shifted down by h rows.
func (r RowIndex) Add(h RowHeight) RowIndex { return RowIndex(uint32(r) + uint32(h)) }

// Sub returns the index shifted up by h rows, clamped at 0.
func (r RowIndex) Sub(h RowHeight) RowIndex {
	if uint32(h) > uint32(r) {
		return 0
	}
	return RowIndex(uint32(r) - uint32(h))
}

// Diff returns the height spanning [r, other) (0 if other <= r).
func (r RowIndex) Diff(other RowIndex) RowHeight {
	if other <= r {
		return 0
	}
	return RowHeight(uint32(other) - uint32(r))
}

// AsHeight reinterprets the index as a count (e.g. "rows above this one").
func (r RowIndex) AsHeight() RowHeight { return RowHeight(r) }

func (h RowHeight) Sub(other RowHeight) RowHeight {
	if other > h {
		return 0
	}
	return h - other
}

func (h RowHeight) Add(other RowHeight) RowHeight { return h + other }

// AsIndex reinterprets a height as the one-past-the-end index of a
// zero-origin span of that height.
func (h RowHeight) AsIndex() RowIndex { return RowIndex(h) }

// Add returns the index shifted right by w columns.
func (c ColIndex) Add(w ColWidth) ColIndex { return ColIndex(uint32(c) + uint32(w)) }

// Sub returns the index shifted left by w columns, clamped at 0.
func (c ColIndex) Sub(w ColWidth) ColIndex {
	if uint32(w) > uint32(c) {
		return 0
	}
	return ColIndex(uint32(c) - uint32(w))
}

// Diff returns the width spanning [c, other) (0 if other <= c).
func (c ColIndex) Diff(other ColIndex) ColWidth {
	if other <= c {
		return 0
	}
	return ColWidth(uint32(other) - uint32(c))
}

func (c ColIndex) AsWidth() ColWidth { return ColWidth(c) }

func (w ColWidth) Sub(other ColWidth) ColWidth {
	if other > w {
		return 0
	}
	return w - other
}

func (w ColWidth) Add(other ColWidth) ColWidth { return w + other }

func (w ColWidth) AsIndex() ColIndex { return ColIndex(w) }

// SegIndex is a 0-based position in a GCString's grapheme segment list.
type SegIndex uint32

// SegLength is a count of grapheme segments.
type SegLength uint32

func (s SegIndex) Add(n SegLength) SegIndex { return SegIndex(uint32(s) + uint32(n)) }
func (n SegLength) AsIndex() SegIndex       { return SegIndex(n) }

// ByteIndex is a 0-based byte offset into a UTF-8 string.
type ByteIndex uint32

// ByteOffset is a count of bytes.
type ByteOffset uint32

func (b ByteIndex) Add(n ByteOffset) ByteIndex { return ByteIndex(uint32(b) + uint32(n)) }
func (b ByteIndex) Diff(other ByteIndex) ByteOffset {
	if other <= b {
		return 0
	}
	return ByteOffset(uint32(other) - uint32(b))
}
func (n ByteOffset) AsIndex() ByteIndex { return ByteIndex(n) }

// Percent validates 0..=100 on construction and truncates on scale.
type Percent struct {
	value uint8
}

// NewPercent constructs a Percent, clamping out-of-range input into [0,100]
// rather than panicking — release builds clamp per the engine's bounds-error
// policy (spec §7).
func NewPercent(v int) Percent {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return Percent{value: uint8(v)}
}

func (p Percent) Value() int { return int(p.value) }

// ApplyToWidth returns floor(w * p / 100).
func (p Percent) ApplyToWidth(w ColWidth) ColWidth {
	return ColWidth((uint64(w) * uint64(p.value)) / 100)
}

// ApplyToHeight returns floor(h * p / 100).
func (p Percent) ApplyToHeight(h RowHeight) RowHeight {
	return RowHeight((uint64(h) * uint64(p.value)) / 100)
}

// Apply returns value * p / 100 for a plain integer, truncated toward zero.
func (p Percent) Apply(value int) int {
	if value < 0 {
		return -((-value * p.Value()) / 100)
	}
	return (value * p.Value()) / 100
}
