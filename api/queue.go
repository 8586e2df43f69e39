// File: api/queue.go
// Author: wyattgill9 <wyattgill9@gmail.com>
//
// Concurrent unbounded FIFO queue contract.

package api

// Queue is a concurrent unbounded first-in-first-out container.
type Queue[T any] interface {
	// Enqueue appends an item. It always succeeds.
	Enqueue(item T)
	// Dequeue removes the oldest item, ok false if empty.
	Dequeue() (T, bool)
	// Empty reports whether the queue held no items at the moment of the call.
	Empty() bool
	// Reset discards all items.
	Reset()
}
