// File: lfs/queue.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Michael-Scott queue: concurrent unbounded FIFO behind a sentinel head.

package lfs

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/wyattgill9/utils/api"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Queue[any])(nil)

// Queue is a lock-free unbounded FIFO container. Use NewQueue; the zero
// value lacks the sentinel node and is not usable.
//
// head always points at a sentinel whose successors carry the queued
// values; tail points at the sentinel or at a node reachable from it, and
// at most one node ever has a nil next pointer. Unlinked nodes are left
// to the garbage collector and never reused.
type Queue[T any] struct {
	head atomic.Pointer[qnode[T]]
	_    cpu.CacheLinePad
	tail atomic.Pointer[qnode[T]]
}

type qnode[T any] struct {
	value T
	next  atomic.Pointer[qnode[T]]
}

// NewQueue returns an empty queue with head and tail sharing one sentinel.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	sentinel := &qnode[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Enqueue appends value at the tail. It always succeeds.
func (q *Queue[T]) Enqueue(value T) {
	n := &qnode[T]{value: value}
	var sp spinner
	for {
		tail := q.tail.Load()
		next := tail.next.Load()
		if tail != q.tail.Load() {
			continue
		}
		if next != nil {
			// tail lags behind a completed link, help it forward
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		if tail.next.CompareAndSwap(nil, n) {
			// best effort: a helper may already have swung tail
			q.tail.CompareAndSwap(tail, n)
			return
		}
		sp.spin()
	}
}

// Dequeue removes and returns the oldest value.
// It returns ok == false when the queue is empty.
func (q *Queue[T]) Dequeue() (value T, ok bool) {
	var sp spinner
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()
		if head != q.head.Load() {
			continue
		}
		if head == tail {
			if next == nil {
				var zero T
				return zero, false
			}
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		if q.head.CompareAndSwap(head, next) {
			// next is the new sentinel now; only this goroutine may touch
			// its value slot.
			value = next.value
			var zero T
			next.value = zero
			return value, true
		}
		sp.spin()
	}
}

// Empty reports whether the queue held no items at the moment of the call.
// It inspects only the sentinel's successor, never tail.
func (q *Queue[T]) Empty() bool {
	return q.head.Load().next.Load() == nil
}

// Reset discards every value linked before the call by swinging head to
// the observed tail, which becomes the new sentinel. Enqueues racing with
// Reset survive when their link lands after that tail.
func (q *Queue[T]) Reset() {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head == tail {
			return
		}
		if q.head.CompareAndSwap(head, tail) {
			var zero T
			tail.value = zero
			return
		}
	}
}
