// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free fixed-capacity SPSC ring buffer. The write and read indices
// grow monotonically and live on separate cache lines next to a local
// snapshot of the opposite index, so steady-state pushes and pops touch
// no line the other side writes.

package ring

import (
	"sync/atomic"
	"unsafe"

	"github.com/Vaibhav-20022002/RingMaster/api"
	"github.com/Vaibhav-20022002/RingMaster/cacheline"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a lock-free ring buffer (single producer, single consumer).
// Exactly one goroutine may push and exactly one may pop; the two sides
// never block each other. The zero value is not usable; construct with New.
type Buffer[T any] struct {
	_ cacheline.Pad

	// Producer line: write index plus the producer's snapshot of the
	// read index. The snapshot is refreshed only when the ring looks
	// full, so most pushes read nothing the consumer writes.
	writePos   atomic.Uint64
	cachedRead uint64
	_          [cacheline.PadSize - unsafe.Sizeof(atomic.Uint64{}) - 8]byte

	// Consumer line: read index plus the consumer's snapshot of the
	// write index.
	readPos     atomic.Uint64
	cachedWrite uint64
	_           [cacheline.PadSize - unsafe.Sizeof(atomic.Uint64{}) - 8]byte

	// Immutable after New.
	buf  []T
	mask uint64
}

// New allocates a ring buffer of power-of-two size. Slot access masks
// the indices and occupancy uses unsigned subtraction, so behavior is
// unchanged when the indices overflow uint64.
func New[T any](size uint64) *Buffer[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("ring: size must be power of two")
	}
	return &Buffer[T]{
		buf:  make([]T, size),
		mask: size - 1,
	}
}

// Push appends an item; returns false if the ring is full. A failed
// push leaves both the ring and the item untouched.
func (b *Buffer[T]) Push(item T) bool {
	w := b.writePos.Load()
	if w-b.cachedRead > b.mask {
		// Looks full; refresh the snapshot from the consumer index.
		b.cachedRead = b.readPos.Load()
		if w-b.cachedRead > b.mask {
			return false
		}
	}
	b.buf[w&b.mask] = item
	b.writePos.Store(w + 1) // publish to the consumer
	return true
}

// Pop removes and returns the oldest item; ok is false if the ring is
// empty. The vacated slot is zeroed so the ring drops its reference.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	r := b.readPos.Load()
	if r == b.cachedWrite {
		// Looks empty; refresh the snapshot from the producer index.
		b.cachedWrite = b.writePos.Load()
		if r == b.cachedWrite {
			return zero, false
		}
	}
	idx := r & b.mask
	item := b.buf[idx]
	b.buf[idx] = zero
	b.readPos.Store(r + 1) // release the slot to the producer
	return item, true
}

// Remove discards up to n oldest items without retrieval and returns
// the number actually removed. Discarded slots are zeroed. Consumer side.
func (b *Buffer[T]) Remove(n int) int {
	if n <= 0 {
		return 0
	}
	r := b.readPos.Load()
	w := b.writePos.Load()
	b.cachedWrite = w
	toRemove := uint64(n)
	if avail := w - r; toRemove > avail {
		toRemove = avail
	}
	if toRemove == 0 {
		return 0
	}
	var zero T
	for i := uint64(0); i < toRemove; i++ {
		b.buf[(r+i)&b.mask] = zero
	}
	b.readPos.Store(r + toRemove)
	return int(toRemove)
}

// Clear resets the ring to the empty state and zeroes the storage.
// Not safe to call while a push or pop is in flight.
func (b *Buffer[T]) Clear() {
	clear(b.buf)
	b.writePos.Store(0)
	b.readPos.Store(0)
	b.cachedRead = 0
	b.cachedWrite = 0
}

// IsEmpty reports whether the ring holds no items. Approximate while
// the other side is active.
func (b *Buffer[T]) IsEmpty() bool {
	r := b.readPos.Load()
	return r == b.writePos.Load()
}

// IsFull reports whether the ring is at capacity. Approximate while
// the other side is active.
func (b *Buffer[T]) IsFull() bool {
	r := b.readPos.Load()
	return b.writePos.Load()-r > b.mask
}

// Len returns the number of items currently buffered. The read index
// is loaded first, which keeps the result inside [0, Cap] no matter
// which side asks.
func (b *Buffer[T]) Len() int {
	r := b.readPos.Load()
	w := b.writePos.Load()
	return int(w - r)
}

// Cap returns the fixed buffer capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.buf)
}
