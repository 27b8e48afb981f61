// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// ring_property_test.go: randomized model checks for the SPSC core.
package ring

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/eapache/queue"
)

// TestBufferMatchesQueueModel drives the ring and a plain FIFO queue
// with the same random operations and requires identical behavior.
func TestBufferMatchesQueueModel(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		b := New[int](64)
		model := queue.New()

		for i := 0; i < 5000; i++ {
			switch rnd.Intn(4) {
			case 0, 1: // push
				val := rnd.Intn(100000)
				pushed := b.Push(val)
				if wantRoom := model.Length() < b.Cap(); pushed != wantRoom {
					t.Fatalf("seed %d: push accepted=%v, model length %d", seed, pushed, model.Length())
				}
				if pushed {
					model.Add(val)
				}
			case 2: // pop
				got, ok := b.Pop()
				if ok != (model.Length() > 0) {
					t.Fatalf("seed %d: pop ok=%v, model length %d", seed, ok, model.Length())
				}
				if ok {
					want := model.Remove().(int)
					if got != want {
						t.Fatalf("seed %d: FIFO order broken: got %d, want %d", seed, got, want)
					}
				}
			case 3: // bulk discard
				n := rnd.Intn(5)
				removed := b.Remove(n)
				want := n
				if model.Length() < want {
					want = model.Length()
				}
				if removed != want {
					t.Fatalf("seed %d: Remove(%d) = %d, want %d", seed, n, removed, want)
				}
				for j := 0; j < removed; j++ {
					model.Remove()
				}
			}
			if b.Len() != model.Length() {
				t.Fatalf("seed %d: length drift: ring %d, model %d", seed, b.Len(), model.Length())
			}
			if b.Len() < 0 || b.Len() > b.Cap() {
				t.Fatalf("seed %d: Len out of bounds: %d", seed, b.Len())
			}
		}
	}
}

// TestBufferConcurrentSPSC checks conservation and order with a real
// producer/consumer pair: every value arrives exactly once, in push order.
func TestBufferConcurrentSPSC(t *testing.T) {
	const items = 100000
	b := New[int](32)

	var wg sync.WaitGroup
	wg.Add(2)
	var sentSum, receivedSum int64

	go func() {
		defer wg.Done()
		for i := 0; i < items; i++ {
			for !b.Push(i) {
				time.Sleep(time.Microsecond)
			}
			sentSum += int64(i)
		}
	}()

	go func() {
		defer wg.Done()
		next := 0
		for next < items {
			val, ok := b.Pop()
			if !ok {
				time.Sleep(time.Microsecond)
				continue
			}
			if val != next {
				t.Errorf("out of order: got %d, want %d", val, next)
				return
			}
			receivedSum += int64(val)
			next++
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if sentSum != receivedSum {
			t.Errorf("checksum mismatch: sent %d, received %d", sentSum, receivedSum)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for producer/consumer pair")
	}
}

// TestBufferConcurrentInterleavedRemove mixes Pop with bulk Remove on
// the consumer side and checks that exactly the pushed count is consumed.
func TestBufferConcurrentInterleavedRemove(t *testing.T) {
	const items = 50000
	b := New[int](64)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < items; i++ {
			for !b.Push(i) {
				time.Sleep(time.Microsecond)
			}
		}
	}()

	var consumed int64
	go func() {
		defer wg.Done()
		rnd := rand.New(rand.NewSource(42))
		for consumed < items {
			if rnd.Intn(4) == 0 {
				consumed += int64(b.Remove(rnd.Intn(8)))
				continue
			}
			if _, ok := b.Pop(); ok {
				consumed++
			} else {
				time.Sleep(time.Microsecond)
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if consumed != items {
			t.Errorf("consumed %d items, want %d", consumed, items)
		}
		if !b.IsEmpty() {
			t.Errorf("ring not empty: %d left", b.Len())
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for producer/consumer pair")
	}
}
