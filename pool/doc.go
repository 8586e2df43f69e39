// Package pool
// Author: wyattgill9 <wyattgill9@gmail.com>
//
// Object and byte pooling built on the lock-free containers.
// FreeList recycles a bounded object population through an lfs.Ring,
// SyncPool wraps sync.Pool for typed use, and BytePool serves byte
// slices from power-of-two size classes. All types are safe for
// concurrent use.
package pool
