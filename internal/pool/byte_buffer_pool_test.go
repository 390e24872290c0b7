package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)
	n, err := bb.Write([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, []byte("hello world"), bb.Bytes())

	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.True(t, bb.Cap() >= 4)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.Write([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBuffer_GrowBeyondDefault(t *testing.T) {
	bb := NewByteBuffer(1)
	big := bytes.Repeat([]byte("x"), 5*LeafBufferDefaultSize)
	bb.Write(big)
	assert.Equal(t, len(big), bb.Len())
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)
	bb := p.Get()
	bb.Write(bytes.Repeat([]byte("x"), 100))
	p.Put(bb) // exceeds maxThreshold, should be discarded rather than pooled

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len())
	assert.Equal(t, 8, bb2.Cap()) // a fresh buffer, not the grown one
}

func TestLeafAndFetchBufferPools(t *testing.T) {
	lb := GetLeafBuffer()
	require.NotNil(t, lb)
	lb.Write([]byte("leaf"))
	PutLeafBuffer(lb)

	fb := GetFetchBuffer()
	require.NotNil(t, fb)
	fb.Write([]byte("fetch"))
	PutFetchBuffer(fb)
}
