// File: api/stack.go
// Author: wyattgill9 <wyattgill9@gmail.com>
//
// Concurrent LIFO stack contract.

package api

// Stack is a concurrent last-in-first-out container.
type Stack[T any] interface {
	// Push adds an item. It always succeeds.
	Push(item T)
	// Pop removes the most recently pushed item, ok false if empty.
	Pop() (T, bool)
	// Empty reports whether the stack held no items at the moment of the call.
	Empty() bool
	// Reset discards all items.
	Reset()
}
