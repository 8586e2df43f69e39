// File: pool/freelist.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity free list over the lock-free ring.

package pool

import (
	"sync/atomic"

	"github.com/wyattgill9/utils/api"
	"github.com/wyattgill9/utils/lfs"
)

// Ensure compile-time interface compliance.
var _ api.ObjectPool[any] = (*FreeList[any])(nil)

// FreeList recycles objects through a fixed-capacity lock-free ring.
// Get drains the ring before falling back to the constructor; Put drops
// the object when the ring is full and lets the GC take it.
type FreeList[T any] struct {
	ring   *lfs.Ring[T]
	newFn  func() T
	hits   atomic.Uint64
	misses atomic.Uint64
	drops  atomic.Uint64
}

// FreeListStats counts Get and Put outcomes since construction.
type FreeListStats struct {
	Hits   uint64 // Gets served from the ring
	Misses uint64 // Gets that fell back to the constructor
	Drops  uint64 // Puts rejected by a full ring
}

// NewFreeList builds a free list holding up to capacity objects
// (rounded up to a power of two by the ring). newFn supplies objects
// when the list runs dry; it must not be nil.
func NewFreeList[T any](capacity int, newFn func() T) *FreeList[T] {
	if newFn == nil {
		panic("pool: NewFreeList requires a constructor")
	}
	return &FreeList[T]{
		ring:  lfs.NewRing[T](capacity),
		newFn: newFn,
	}
}

// Get returns a recycled object, or a fresh one from the constructor.
func (f *FreeList[T]) Get() T {
	if v, ok := f.ring.Dequeue(); ok {
		f.hits.Add(1)
		return v
	}
	f.misses.Add(1)
	return f.newFn()
}

// Put offers obj back for reuse. A full list drops the object.
func (f *FreeList[T]) Put(obj T) {
	if !f.ring.Enqueue(obj) {
		f.drops.Add(1)
	}
}

// Len returns the number of pooled objects at the moment of the call.
func (f *FreeList[T]) Len() int {
	return f.ring.Len()
}

// Cap returns the maximum number of pooled objects.
func (f *FreeList[T]) Cap() int {
	return f.ring.Cap()
}

// Stats returns a point-in-time counter snapshot.
func (f *FreeList[T]) Stats() FreeListStats {
	return FreeListStats{
		Hits:   f.hits.Load(),
		Misses: f.misses.Load(),
		Drops:  f.drops.Load(),
	}
}
