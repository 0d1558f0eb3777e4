// FILE: buffer_test.go
package ringlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRingBufferSequentialWrites verifies exact content for writes under capacity
func TestRingBufferSequentialWrites(t *testing.T) {
	rb := NewRingBuffer(64)

	rb.Write([]byte("alpha\n"))
	rb.Write([]byte("beta\n"))
	rb.Write([]byte("gamma\n"))

	assert.Equal(t, "alpha\nbeta\ngamma\n", string(rb.Bytes()))
	assert.Equal(t, 17, rb.Len())
	assert.False(t, rb.Filled())
}

// TestRingBufferWraparound verifies the split-copy wrap reconstructs logical order
func TestRingBufferWraparound(t *testing.T) {
	rb := NewRingBuffer(100)

	// Three 40-byte chunks: the third wraps 20 bytes back to offset zero
	r1 := bytes.Repeat([]byte{'1'}, 40)
	r2 := bytes.Repeat([]byte{'2'}, 40)
	r3 := bytes.Repeat([]byte{'3'}, 40)
	rb.Write(r1)
	rb.Write(r2)
	rb.Write(r3)

	require.True(t, rb.Filled())
	assert.Equal(t, 100, rb.Len())

	want := append(append(bytes.Repeat([]byte{'1'}, 20), r2...), r3...)
	assert.Equal(t, want, rb.Bytes())
}

// TestRingBufferExactBoundary checks the wrap latch when a write lands exactly at capacity
func TestRingBufferExactBoundary(t *testing.T) {
	rb := NewRingBuffer(32)

	rb.Write(bytes.Repeat([]byte{'a'}, 32))

	assert.True(t, rb.Filled())
	assert.False(t, rb.Evicted(), "boundary fit overwrites nothing")
	assert.Equal(t, 32, rb.Len())
	assert.Equal(t, strings.Repeat("a", 32), string(rb.Bytes()))

	// The filled latch never reverts; the next write evicts
	rb.Write([]byte("bb"))
	assert.True(t, rb.Filled())
	assert.True(t, rb.Evicted())
	assert.Equal(t, 32, rb.Len())
}

// TestRingBufferEvictedLatch walks the eviction states across write shapes
func TestRingBufferEvictedLatch(t *testing.T) {
	rb := NewRingBuffer(20)

	rb.Write([]byte("0123456789"))
	assert.False(t, rb.Evicted())

	// Two fits reaching exactly capacity
	rb.Write([]byte("abcdefghij"))
	assert.True(t, rb.Filled())
	assert.False(t, rb.Evicted())

	// Writing over retained content evicts
	rb.Write([]byte("XYZ"))
	assert.True(t, rb.Evicted())

	// A write of exactly capacity replaces the whole window
	rb.Write(bytes.Repeat([]byte{'w'}, 20))
	assert.False(t, rb.Evicted())

	// Oversized writes lose their own leading bytes
	rb.Write(bytes.Repeat([]byte{'v'}, 21))
	assert.True(t, rb.Evicted())

	rb.Reset()
	assert.False(t, rb.Evicted())
}

// TestRingBufferOversizedWrite verifies only the trailing capacity bytes survive
func TestRingBufferOversizedWrite(t *testing.T) {
	rb := NewRingBuffer(10)

	rb.Write([]byte("0123456789abcdef"))

	assert.True(t, rb.Filled())
	assert.Equal(t, 10, rb.Len())
	assert.Equal(t, "6789abcdef", string(rb.Bytes()))
}

// TestRingBufferLenNeverExceedsCapacity covers mixed write sizes including oversized ones
func TestRingBufferLenNeverExceedsCapacity(t *testing.T) {
	rb := NewRingBuffer(50)

	sizes := []int{3, 49, 50, 51, 200, 1, 7}
	for _, n := range sizes {
		rb.Write(bytes.Repeat([]byte{'x'}, n))
		assert.LessOrEqual(t, rb.Len(), 50)
		assert.Len(t, rb.Bytes(), rb.Len())
	}
}

// TestRingBufferReset verifies reset clears content and the filled latch
func TestRingBufferReset(t *testing.T) {
	rb := NewRingBuffer(16)
	rb.Write(bytes.Repeat([]byte{'z'}, 20))
	require.True(t, rb.Filled())

	rb.Reset()

	assert.False(t, rb.Filled())
	assert.Equal(t, 0, rb.Len())
	assert.Empty(t, rb.Bytes())
	assert.Equal(t, 16, rb.Capacity())
}

// TestRingBufferDefaultCapacity verifies the fallback for non-positive sizes
func TestRingBufferDefaultCapacity(t *testing.T) {
	rb := NewRingBuffer(0)
	assert.Equal(t, DefaultCapacity, rb.Capacity())

	rb = NewRingBuffer(-5)
	assert.Equal(t, DefaultCapacity, rb.Capacity())
}

// TestRingBufferBytesIsCopy ensures readers cannot mutate the ring's storage
func TestRingBufferBytesIsCopy(t *testing.T) {
	rb := NewRingBuffer(8)
	rb.Write([]byte("abcd"))

	out := rb.Bytes()
	out[0] = 'Z'

	assert.Equal(t, "abcd", string(rb.Bytes()))
}
