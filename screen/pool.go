package screen

import (
	"sync"

	"github.com/tuicore/vtengine/units"
)

// Pool recycles Buffers of a given size across frames, grounded on
// kungfusheep-glyph's bufferPool (pool.go): avoid reallocating the cell grid
// when the caller repeatedly needs a scratch buffer at the same dimensions
// (e.g. a backend's previous-frame snapshot, or a resize that keeps the
// same width/height).
type Pool struct {
	mu   sync.Mutex
	free []*Buffer
}

// NewPool returns an empty pool.
func NewPool() *Pool { return &Pool{} }

// Get returns a cleared width x height buffer, reusing one from the pool
// when its dimensions already match.
func (p *Pool) Get(width units.ColWidth, height units.RowHeight) *Buffer {
	p.mu.Lock()
	for i, b := range p.free {
		if b.width == width && b.height == height {
			p.free[i] = p.free[len(p.free)-1]
			p.free = p.free[:len(p.free)-1]
			p.mu.Unlock()
			b.Clear()
			b.CursorToPosition(0, 0)
			return b
		}
	}
	p.mu.Unlock()
	return NewEmpty(width, height)
}

// Put returns b to the pool for reuse.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.mu.Lock()
	p.free = append(p.free, b)
	p.mu.Unlock()
}
