// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring provides a fixed-capacity single-producer/single-consumer
// circular buffer with a lock-free core and an optional adaptive
// spin-then-block layer.
//
// Buffer is the core: constant-time push and pop, bulk remove, and
// approximate occupancy queries, with the two indices padded onto
// separate cache lines. Waiter composes blocking PushWait and PopWait on
// top of an unmodified Buffer and reports spin and block counts so
// callers can observe how often waits turn into parks.
package ring
