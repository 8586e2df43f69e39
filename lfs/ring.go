// File: lfs/ring.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Bounded MPMC ring buffer with per-cell sequence numbers, after the
// scheme by Dmitry Vyukov. Head and tail live on separate cache lines.

package lfs

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/wyattgill9/utils/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a bounded lock-free MPMC ring buffer. Capacity is rounded up to
// the next power of two, minimum 2.
//
// Each cell carries a sequence number gating consumers until the matching
// producer write has been published, so a reserved slot can never be read
// before its value is visible.
type Ring[T any] struct {
	head  uint64
	_     cpu.CacheLinePad
	tail  uint64
	_     cpu.CacheLinePad
	mask  uint64
	cells []rcell[T]
}

type rcell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// NewRing allocates a ring buffer of the given capacity rounded up to the
// next power of two.
func NewRing[T any](capacity int) *Ring[T] {
	size := uint64(2)
	if capacity > 2 {
		size = uint64(capacity)
		if size&(size-1) != 0 {
			n := size - 1
			n |= n >> 1
			n |= n >> 2
			n |= n >> 4
			n |= n >> 8
			n |= n >> 16
			n |= n >> 32
			size = n + 1
		}
	}
	r := &Ring[T]{
		mask:  size - 1,
		cells: make([]rcell[T], size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// Enqueue adds item; returns false if full. A rejected item stays with the
// caller unchanged.
func (r *Ring[T]) Enqueue(item T) bool {
	var sp spinner
	for {
		tail := atomic.LoadUint64(&r.tail)
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		if dif == 0 {
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				c.data = item
				c.sequence.Store(tail + 1)
				return true
			}
			sp.spin()
		} else if dif < 0 {
			return false // full: cell still holds the previous lap
		}
		// seq ahead of tail: stale tail, reload
	}
}

// Dequeue removes and returns the oldest item; ok false if empty.
func (r *Ring[T]) Dequeue() (item T, ok bool) {
	var sp spinner
	for {
		head := atomic.LoadUint64(&r.head)
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		if dif == 0 {
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				item = c.data
				var zero T
				c.data = zero
				c.sequence.Store(head + r.mask + 1)
				return item, true
			}
			sp.spin()
		} else if dif < 0 {
			var zero T
			return zero, false // empty: no published write for this lap
		}
		// seq ahead of head+1: stale head, reload
	}
}

// Len returns the item count at the moment of the call; the snapshot is
// not transactionally consistent with concurrent mutators.
func (r *Ring[T]) Len() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the fixed buffer capacity.
func (r *Ring[T]) Cap() int {
	return len(r.cells)
}

// Empty reports Len() == 0 at the moment of the call.
func (r *Ring[T]) Empty() bool {
	return r.Len() == 0
}

// Full reports Len() == Cap() at the moment of the call.
func (r *Ring[T]) Full() bool {
	return r.Len() >= len(r.cells)
}

// Reset dequeues until empty, keeping per-cell sequence numbers consistent
// for reuse.
func (r *Ring[T]) Reset() {
	for {
		if _, ok := r.Dequeue(); !ok {
			return
		}
	}
}
