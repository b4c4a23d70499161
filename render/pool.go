package render

import "sync"

// opBufferPool recycles OpBuffers across Diff calls, grounded on glyph's
// bufferPool pattern (kungfusheep-glyph/pool.go): keyed by type rather than
// capacity since the zero-value slice already rescales via append.
var opBufferPool = sync.Pool{
	New: func() any { return &OpBuffer{} },
}

// GetOpBuffer returns a pooled, emptied OpBuffer.
func GetOpBuffer() *OpBuffer {
	b := opBufferPool.Get().(*OpBuffer)
	b.reset()
	return b
}

// PutOpBuffer returns an OpBuffer to the pool once its ops have been
// consumed by the caller's backend.
func PutOpBuffer(b *OpBuffer) {
	if b == nil {
		return
	}
	opBufferPool.Put(b)
}
