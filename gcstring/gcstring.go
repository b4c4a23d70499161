// Package gcstring implements GCString, a UTF-8 string indexed by display
// column rather than by byte or rune, so editing operations (insert, split,
// delete, clip) can reason about terminal columns directly instead of
// re-deriving grapheme boundaries and East-Asian widths on every call.
package gcstring

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/tuicore/vtengine/units"
)

// Segment describes one grapheme cluster within the owning GCString.
type Segment struct {
	StartByte       units.ByteIndex
	EndByte         units.ByteIndex
	DisplayWidth    units.ColWidth
	LogicalIndex    units.SegIndex
	ByteSize        units.ByteOffset
	StartDisplayCol units.ColIndex
}

// GCString owns a UTF-8 string plus its grapheme-cluster segment table.
// Every mutation returns a freshly built GCString; GCString itself is
// immutable once constructed.
type GCString struct {
	s        string
	segments []Segment
	width    units.ColWidth
}

// New builds a GCString from a UTF-8 string in one pass over its extended
// grapheme clusters.
func New(s string) GCString {
	g := GCString{s: s}
	g.segments = segmentString(s)
	if n := len(g.segments); n > 0 {
		last := g.segments[n-1]
		g.width = units.ColWidth(uint32(last.StartDisplayCol) + uint32(last.DisplayWidth))
	}
	return g
}

func segmentString(s string) []Segment {
	segs := make([]Segment, 0, len(s))
	var (
		logical    units.SegIndex
		displayCol units.ColIndex
	)
	state := -1
	b := []byte(s)
	pos := 0
	for len(b) > 0 {
		cluster, rest, width, newState := uniseg.FirstGraphemeClusterInString(string(b), state)
		state = newState
		start := pos
		end := pos + len(cluster)
		segs = append(segs, Segment{
			StartByte:       units.ByteIndex(start),
			EndByte:         units.ByteIndex(end),
			DisplayWidth:    units.ColWidth(width),
			LogicalIndex:    logical,
			ByteSize:        units.ByteOffset(len(cluster)),
			StartDisplayCol: displayCol,
		})
		logical = logical.Add(1)
		displayCol = displayCol.Add(units.ColWidth(width))
		pos = end
		b = []byte(rest)
	}
	return segs
}

// String returns the owned UTF-8 text.
func (g GCString) String() string { return g.s }

// DisplayWidth returns the total terminal-column width of the string.
func (g GCString) DisplayWidth() units.ColWidth { return g.width }

// SegmentCount returns the number of grapheme clusters.
func (g GCString) SegmentCount() units.SegLength { return units.SegLength(len(g.segments)) }

// Segments returns the underlying segment table (read-only).
func (g GCString) Segments() []Segment { return g.segments }

// SegmentAtDisplayCol finds the cluster covering a display column via binary
// search on StartDisplayCol. Returns false if col is at or beyond the
// string's width.
func (g GCString) SegmentAtDisplayCol(col units.ColIndex) (Segment, bool) {
	segs := g.segments
	i := sort.Search(len(segs), func(i int) bool {
		end := uint32(segs[i].StartDisplayCol) + uint32(segs[i].DisplayWidth)
		return end > uint32(col)
	})
	if i >= len(segs) {
		return Segment{}, false
	}
	if uint32(segs[i].StartDisplayCol) > uint32(col) {
		return Segment{}, false
	}
	return segs[i], true
}

// IsInMiddleOfGrapheme reports whether col lands strictly inside a
// multi-column cluster (not at its first column).
func (g GCString) IsInMiddleOfGrapheme(col units.ColIndex) bool {
	seg, ok := g.SegmentAtDisplayCol(col)
	if !ok {
		return false
	}
	return col > seg.StartDisplayCol && uint32(col) < uint32(seg.StartDisplayCol)+uint32(seg.DisplayWidth)
}

// Clip returns the substring whose display range lies inside
// [startCol, startCol+width). The result is biased to whole clusters: if a
// boundary falls inside a wide cluster, that cluster is excluded rather than
// split, so the returned text may be narrower than requested.
func (g GCString) Clip(startCol units.ColIndex, width units.ColWidth) string {
	endCol := startCol.Add(width)
	startByte, endByte := units.ByteIndex(len(g.s)), units.ByteIndex(0)
	found := false
	for _, seg := range g.segments {
		segStart := seg.StartDisplayCol
		segEnd := units.ColIndex(uint32(seg.StartDisplayCol) + uint32(seg.DisplayWidth))
		if segStart < startCol || segEnd > endCol {
			continue
		}
		if !found {
			startByte = seg.StartByte
			found = true
		}
		endByte = seg.EndByte
	}
	if !found {
		return ""
	}
	return g.s[startByte:endByte]
}

// TruncEndToFit returns the longest prefix of the string whose display width
// is <= maxWidth.
func (g GCString) TruncEndToFit(maxWidth units.ColWidth) string {
	endByte := units.ByteIndex(0)
	for _, seg := range g.segments {
		newEnd := uint32(seg.StartDisplayCol) + uint32(seg.DisplayWidth)
		if newEnd > uint32(maxWidth) {
			break
		}
		endByte = seg.EndByte
	}
	return g.s[:endByte]
}

// InsertAtDisplayCol inserts chunk at display column col, returning the new
// GCString and the display width that was inserted. col may equal the
// string's width (append).
func (g GCString) InsertAtDisplayCol(col units.ColIndex, chunk string) (GCString, units.ColWidth) {
	byteCol := g.byteOffsetForInsert(col)
	newStr := g.s[:byteCol] + chunk + g.s[byteCol:]
	inserted := New(chunk)
	return New(newStr), inserted.DisplayWidth()
}

// byteOffsetForInsert resolves the byte offset at which an insertion at a
// display column should occur. If col lands in the middle of a cluster, the
// insertion happens before that cluster (biasing left), matching the clip
// policy's "whole clusters" bias.
func (g GCString) byteOffsetForInsert(col units.ColIndex) int {
	if uint32(col) >= uint32(g.width) {
		return len(g.s)
	}
	seg, ok := g.SegmentAtDisplayCol(col)
	if !ok {
		return len(g.s)
	}
	return int(seg.StartByte)
}

// SplitAtDisplayCol splits the string at display column col into (left,
// right). Returns ok=false if both sides would be empty (i.e. the string is
// empty) — a split where one side is empty and the other isn't is legal.
func (g GCString) SplitAtDisplayCol(col units.ColIndex) (left, right GCString, ok bool) {
	if len(g.s) == 0 {
		return GCString{}, GCString{}, false
	}
	byteCol := g.byteOffsetForInsert(col)
	return New(g.s[:byteCol]), New(g.s[byteCol:]), true
}

// DeleteAtDisplayCol removes exactly the grapheme cluster covering col,
// returning the new GCString. If col is not covered by any cluster, the
// original string is returned unchanged.
func (g GCString) DeleteAtDisplayCol(col units.ColIndex) GCString {
	seg, ok := g.SegmentAtDisplayCol(col)
	if !ok {
		return g
	}
	return New(g.s[:seg.StartByte] + g.s[seg.EndByte:])
}

// Empty reports whether the string has no content.
func (g GCString) Empty() bool { return len(g.s) == 0 }

// Builder incrementally assembles a GCString, avoiding a re-segmentation
// pass per append; Build() performs the single segmentation pass at the end.
type Builder struct {
	b strings.Builder
}

func (bld *Builder) WriteString(s string) { bld.b.WriteString(s) }
func (bld *Builder) WriteRune(r rune)      { bld.b.WriteRune(r) }
func (bld *Builder) Build() GCString      { return New(bld.b.String()) }
