// Package pool provides pooled byte buffers for the two allocation-heavy
// paths in the archive engine: the writer's per-leaf compress/encrypt
// scratch space, and the reader's per-fetch decode scratch space.
package pool

import (
	"io"
	"sync"
)

// Default and maximum sizes for the two buffer pools below. Leaf transform
// buffers default small since most resources are modest; fetch buffers
// default larger since decompression commonly expands the stored bytes.
const (
	LeafBufferDefaultSize   = 1024 * 16        // 16KiB
	LeafBufferMaxThreshold  = 1024 * 256       // 256KiB
	FetchBufferDefaultSize  = 1024 * 64        // 64KiB
	FetchBufferMaxThreshold = 1024 * 1024 * 4  // 4MiB
)

// ByteBuffer is a growable byte slice wrapper sized for reuse via sync.Pool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the buffer's current length.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Grow ensures the buffer can hold requiredBytes more bytes without a
// further reallocation: small buffers grow by a fixed increment, larger
// ones by 25% of their current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := LeafBufferDefaultSize
	if cap(bb.B) > 4*LeafBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It implements
// io.Writer so a ByteBuffer can be handed directly to codecs and
// io.Copy-style helpers.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo copies the buffer's contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers of a given default size, discarding
// buffers that have grown past maxThreshold instead of returning them to
// the pool (preventing one oversized leaf from inflating steady-state
// memory use for every subsequent leaf).
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a ByteBufferPool.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool for reuse, unless it has grown past the
// pool's maxThreshold.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}
	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	leafPool  = NewByteBufferPool(LeafBufferDefaultSize, LeafBufferMaxThreshold)
	fetchPool = NewByteBufferPool(FetchBufferDefaultSize, FetchBufferMaxThreshold)
)

// GetLeafBuffer retrieves a ByteBuffer from the writer's leaf-transform pool.
func GetLeafBuffer() *ByteBuffer { return leafPool.Get() }

// PutLeafBuffer returns bb to the writer's leaf-transform pool.
func PutLeafBuffer(bb *ByteBuffer) { leafPool.Put(bb) }

// GetFetchBuffer retrieves a ByteBuffer from the reader's fetch-decode pool.
func GetFetchBuffer() *ByteBuffer { return fetchPool.Get() }

// PutFetchBuffer returns bb to the reader's fetch-decode pool.
func PutFetchBuffer(bb *ByteBuffer) { fetchPool.Put(bb) }
