// Package api
// Author: wyattgill9 <wyattgill9@gmail.com>
//
// Bounded lock-free ring buffer for cross-thread producer/consumer.

package api

// Ring is a bounded lock-free ring buffer contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
	// Empty reports Len() == 0 at the moment of the call.
	Empty() bool
	// Full reports Len() == Cap() at the moment of the call.
	Full() bool
	// Reset discards all items.
	Reset()
}
