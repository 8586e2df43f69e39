// File: mem/access.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Unaligned typed access into byte slices.

package mem

import (
	"fmt"
	"unsafe"
)

// ReadAt reads a T from b at byte offset off. The read is safe at any
// alignment. Panics when the value would run past the end of b.
//
// T should be plain data; a pointer field reconstructed from raw bytes
// is invisible to the garbage collector.
func ReadAt[T any](b []byte, off int) T {
	var v T
	size := int(unsafe.Sizeof(v))
	if off < 0 || size > len(b)-off {
		panic(fmt.Sprintf("mem: read of %d bytes at offset %d out of bounds for %d", size, off, len(b)))
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), size), b[off:off+size])
	return v
}

// WriteAt writes v into b at byte offset off. The write is safe at any
// alignment. Panics when the value would run past the end of b.
func WriteAt[T any](b []byte, off int, v T) {
	size := int(unsafe.Sizeof(v))
	if off < 0 || size > len(b)-off {
		panic(fmt.Sprintf("mem: write of %d bytes at offset %d out of bounds for %d", size, off, len(b)))
	}
	copy(b[off:off+size], unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
}
