// File: ring/waiter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Adaptive spin-then-block layer over Buffer. Both sides run the
// lock-free fast path first and park on a condition variable only after
// the spin budget is exhausted, so short stalls never pay for a context
// switch. The layer drives the ring exclusively through its exported
// operations.

package ring

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/Vaibhav-20022002/RingMaster/api"
)

// Ensure compile-time interface compliance.
var _ api.BlockingRing[any] = (*Waiter[any])(nil)

const (
	// defaultSpinLimit is the number of failed attempts before parking.
	defaultSpinLimit = 1024
	// yieldMask batches scheduler yields, one Gosched per 1024 spins.
	yieldMask = 0x3FF
)

// WaitStats accumulates spin and block counts from blocking operations.
// Both counters only grow; read them with Load. One sink may be shared
// by the producer and consumer sides.
type WaitStats struct {
	// Spins accumulates failed attempts from spin phases that ended in
	// success rather than a park.
	Spins atomic.Uint64
	// Blocks counts entries into a condition variable wait.
	Blocks atomic.Uint64
}

type waitConfig struct {
	spinLimit uint64
	stats     *WaitStats
}

// WaitOption customizes a Waiter.
type WaitOption func(*waitConfig)

// WithSpinLimit sets the number of failed attempts before parking.
// Zero parks on the first failure.
func WithSpinLimit(n int) WaitOption {
	return func(c *waitConfig) {
		if n < 0 {
			n = 0
		}
		c.spinLimit = uint64(n)
	}
}

// WithStats attaches a statistics sink. Nil disables accounting.
func WithStats(s *WaitStats) WaitOption {
	return func(c *waitConfig) {
		c.stats = s
	}
}

// Waiter adds blocking push and pop on top of a Buffer. At most one
// goroutine parks on each side, matching the SPSC contract of the ring.
// Parked goroutines are woken only by the Waiter's own operations, so
// once one side blocks through the Waiter, drive the other side through
// the same Waiter as well.
type Waiter[T any] struct {
	buf *Buffer[T]

	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	// Parked-side flags let successful operations skip the mutex when
	// nobody waits.
	producerParked atomic.Bool
	consumerParked atomic.Bool

	spinLimit uint64
	stats     *WaitStats
}

// NewWaiter wraps buf with adaptive blocking operations.
func NewWaiter[T any](buf *Buffer[T], opts ...WaitOption) *Waiter[T] {
	cfg := waitConfig{spinLimit: defaultSpinLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	w := &Waiter[T]{
		buf:       buf,
		spinLimit: cfg.spinLimit,
		stats:     cfg.stats,
	}
	w.notEmpty = sync.NewCond(&w.mu)
	w.notFull = sync.NewCond(&w.mu)
	return w
}

// PushWait appends item, blocking until space is available.
func (w *Waiter[T]) PushWait(item T) {
	var spins uint64
	for {
		if w.buf.Push(item) {
			w.flushSpins(spins)
			w.wakeConsumer()
			return
		}
		spins++
		if spins < w.spinLimit {
			if spins&yieldMask == 0 {
				runtime.Gosched()
			}
			continue
		}
		w.parkUntilNotFull()
		spins = 0
	}
}

// PopWait removes and returns the oldest item, blocking until one is
// available.
func (w *Waiter[T]) PopWait() T {
	var spins uint64
	for {
		if item, ok := w.buf.Pop(); ok {
			w.flushSpins(spins)
			w.wakeProducer()
			return item
		}
		spins++
		if spins < w.spinLimit {
			if spins&yieldMask == 0 {
				runtime.Gosched()
			}
			continue
		}
		w.parkUntilNotEmpty()
		spins = 0
	}
}

// Push tries a non-blocking append; a parked consumer is woken on
// success.
func (w *Waiter[T]) Push(item T) bool {
	if !w.buf.Push(item) {
		return false
	}
	w.wakeConsumer()
	return true
}

// Pop tries a non-blocking remove; a parked producer is woken on
// success.
func (w *Waiter[T]) Pop() (T, bool) {
	item, ok := w.buf.Pop()
	if ok {
		w.wakeProducer()
	}
	return item, ok
}

// Remove discards up to n oldest items; a parked producer is woken when
// space was freed.
func (w *Waiter[T]) Remove(n int) int {
	removed := w.buf.Remove(n)
	if removed > 0 {
		w.wakeProducer()
	}
	return removed
}

// Clear resets the underlying ring. Same quiescence contract as
// Buffer.Clear.
func (w *Waiter[T]) Clear() { w.buf.Clear() }

// IsEmpty reports whether the ring holds no items.
func (w *Waiter[T]) IsEmpty() bool { return w.buf.IsEmpty() }

// IsFull reports whether the ring is at capacity.
func (w *Waiter[T]) IsFull() bool { return w.buf.IsFull() }

// Len returns the current number of buffered items.
func (w *Waiter[T]) Len() int { return w.buf.Len() }

// Cap returns the fixed capacity of the underlying ring.
func (w *Waiter[T]) Cap() int { return w.buf.Cap() }

// Ring returns the wrapped buffer.
func (w *Waiter[T]) Ring() *Buffer[T] { return w.buf }

func (w *Waiter[T]) flushSpins(spins uint64) {
	if w.stats != nil && spins != 0 {
		w.stats.Spins.Add(spins)
	}
}

// parkUntilNotFull blocks the producer until the consumer frees space.
// The parked flag is raised before the ring state is rechecked, so a
// pop landing between the recheck and the wait still sees the flag and
// delivers its signal under the same mutex.
func (w *Waiter[T]) parkUntilNotFull() {
	w.mu.Lock()
	w.producerParked.Store(true)
	if w.buf.IsFull() {
		if w.stats != nil {
			w.stats.Blocks.Add(1)
		}
		for w.buf.IsFull() {
			w.notFull.Wait()
		}
	}
	w.producerParked.Store(false)
	w.mu.Unlock()
}

// parkUntilNotEmpty blocks the consumer until the producer delivers.
func (w *Waiter[T]) parkUntilNotEmpty() {
	w.mu.Lock()
	w.consumerParked.Store(true)
	if w.buf.IsEmpty() {
		if w.stats != nil {
			w.stats.Blocks.Add(1)
		}
		for w.buf.IsEmpty() {
			w.notEmpty.Wait()
		}
	}
	w.consumerParked.Store(false)
	w.mu.Unlock()
}

// wakeProducer signals a parked producer after space was freed.
func (w *Waiter[T]) wakeProducer() {
	if !w.producerParked.Load() {
		return
	}
	w.mu.Lock()
	w.notFull.Signal()
	w.mu.Unlock()
}

// wakeConsumer signals a parked consumer after an item arrived.
func (w *Waiter[T]) wakeConsumer() {
	if !w.consumerParked.Load() {
		return
	}
	w.mu.Lock()
	w.notEmpty.Signal()
	w.mu.Unlock()
}
