// File: api/pool.go
// Author: wyattgill9 <wyattgill9@gmail.com>
//
// Abstract pooling APIs: allocators for buffer and object reuse.

package api

// BytePool provides reusable []byte buffers for allocation-heavy call sites.
type BytePool interface {
	// Acquire returns a slice of at least n bytes.
	Acquire(n int) []byte

	// Release returns a buffer to the pool.
	Release(buf []byte)
}

// ObjectPool provides generic pooling of transiently allocated objects.
type ObjectPool[T any] interface {
	// Get returns an available instance from the pool.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}
