// FILE: buffer.go
package ringlog

// RingBuffer is a fixed-capacity byte store with wraparound writes and
// chronological reads. Once full it overwrites its oldest content, so the
// retained byte count never exceeds the capacity chosen at construction.
//
// RingBuffer carries no lock of its own; the owning Logger serializes all
// access through its guard.
type RingBuffer struct {
	buf     []byte
	pos     int  // next write offset
	filled  bool // latches true once writes have covered the full capacity
	evicted bool // true while the retained window starts mid-write
}

// NewRingBuffer creates a ring buffer with the given capacity in bytes.
// Non-positive capacities fall back to DefaultCapacity.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &RingBuffer{
		buf: make([]byte, capacity),
	}
}

// Write appends p at the write cursor, wrapping to offset zero when p does
// not fit before the end of storage. If p is longer than the capacity only
// its trailing capacity bytes are retained.
func (rb *RingBuffer) Write(p []byte) {
	capacity := len(rb.buf)
	n := len(p)

	if n >= capacity {
		copy(rb.buf, p[n-capacity:])
		rb.pos = 0
		rb.filled = true
		// The window is exactly p when it fits; otherwise it starts inside p.
		rb.evicted = n > capacity
		return
	}

	space := capacity - rb.pos
	if n <= space {
		if rb.filled {
			rb.evicted = true
		}
		copy(rb.buf[rb.pos:], p)
		rb.pos += n
		if rb.pos == capacity {
			rb.pos = 0
			rb.filled = true
		}
		return
	}

	// Split write: fill to the end of storage, wrap the tail to offset zero
	copy(rb.buf[rb.pos:], p[:space])
	copy(rb.buf, p[space:])
	rb.pos = n - space
	rb.filled = true
	rb.evicted = true
}

// Bytes returns the retained content in logical (oldest-first) order as a
// fresh slice, reconstructed across the wrap boundary when needed.
func (rb *RingBuffer) Bytes() []byte {
	if !rb.filled {
		out := make([]byte, rb.pos)
		copy(out, rb.buf[:rb.pos])
		return out
	}

	capacity := len(rb.buf)
	out := make([]byte, capacity)
	copy(out, rb.buf[rb.pos:])
	copy(out[capacity-rb.pos:], rb.buf[:rb.pos])
	return out
}

// Len reports the number of logically retained bytes: the write cursor
// before the first wrap, the full capacity after it.
func (rb *RingBuffer) Len() int {
	if rb.filled {
		return len(rb.buf)
	}
	return rb.pos
}

// Capacity returns the fixed storage size in bytes.
func (rb *RingBuffer) Capacity() int {
	return len(rb.buf)
}

// Filled reports whether writes have covered the full capacity.
func (rb *RingBuffer) Filled() bool {
	return rb.filled
}

// Evicted reports whether the retained window currently begins in the middle
// of a write. False for writes that land exactly on the capacity boundary,
// where nothing was overwritten.
func (rb *RingBuffer) Evicted() bool {
	return rb.evicted
}

// Reset discards all retained content and clears both latches.
func (rb *RingBuffer) Reset() {
	rb.pos = 0
	rb.filled = false
	rb.evicted = false
}
