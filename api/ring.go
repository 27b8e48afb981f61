// Package api
// Author: momentics@gmail.com
//
// Contracts for the fixed-capacity single-producer/single-consumer ring.

package api

// Ring is the non-blocking SPSC ring buffer contract.
// Exactly one goroutine may call the producer operations and exactly one
// goroutine may call the consumer operations.
type Ring[T any] interface {
	// Push appends an item, returns false if full. Producer side.
	Push(item T) bool
	// Pop removes the oldest item, returns false if empty. Consumer side.
	Pop() (T, bool)
	// Remove discards up to n oldest items, returns the count removed.
	// Consumer side.
	Remove(n int) int
	// Clear resets the ring to empty. Only valid when no push or pop
	// is in flight.
	Clear()
	// IsEmpty reports whether the ring holds no items. Approximate
	// under concurrency.
	IsEmpty() bool
	// IsFull reports whether the ring is at capacity. Approximate
	// under concurrency.
	IsFull() bool
	// Len returns the current number of items. Approximate under
	// concurrency, always within [0, Cap].
	Len() int
	// Cap returns the fixed buffer capacity.
	Cap() int
}

// BlockingRing extends Ring with adaptive spin-then-block operations.
type BlockingRing[T any] interface {
	Ring[T]
	// PushWait appends an item, spinning then parking until space
	// becomes available. Producer side.
	PushWait(item T)
	// PopWait removes the oldest item, spinning then parking until one
	// becomes available. Consumer side.
	PopWait() T
}
