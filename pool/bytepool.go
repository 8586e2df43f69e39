// File: pool/bytepool.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Size-classed byte slice pool. Each power-of-two class from 64 B to
// 1 MiB is backed by its own FreeList.

package pool

import (
	"math/bits"

	"github.com/wyattgill9/utils/api"
)

const (
	minClassBits = 6  // 64 B
	maxClassBits = 20 // 1 MiB
	numClasses   = maxClassBits - minClassBits + 1
)

// Ensure compile-time interface compliance.
var _ api.BytePool = (*BytePool)(nil)

// BytePool hands out byte slices from power-of-two size classes.
// Requests above the largest class fall through to the allocator and
// are not retained on Release.
type BytePool struct {
	classes [numClasses]*FreeList[[]byte]
}

// NewBytePool builds a pool keeping up to perClass free buffers in each
// size class.
func NewBytePool(perClass int) *BytePool {
	bp := &BytePool{}
	for i := range bp.classes {
		size := 1 << (minClassBits + i)
		bp.classes[i] = NewFreeList(perClass, func() []byte {
			return make([]byte, size)
		})
	}
	return bp
}

// classFor returns the smallest class index whose buffers hold n bytes.
func classFor(n int) int {
	if n <= 1<<minClassBits {
		return 0
	}
	return bits.Len(uint(n-1)) - minClassBits
}

// Acquire returns a slice with len == n backed by the smallest class
// that fits. Panics on a negative size.
func (bp *BytePool) Acquire(n int) []byte {
	if n < 0 {
		panic("pool: negative buffer size")
	}
	if n > 1<<maxClassBits {
		return make([]byte, n)
	}
	buf := bp.classes[classFor(n)].Get()
	return buf[:n]
}

// Release returns buf's backing array to its size class. Buffers whose
// capacity is not an exact class size are left to the GC.
func (bp *BytePool) Release(buf []byte) {
	c := cap(buf)
	if c < 1<<minClassBits || c > 1<<maxClassBits || c&(c-1) != 0 {
		return
	}
	cls := bits.Len(uint(c)) - 1 - minClassBits
	bp.classes[cls].Put(buf[:c])
}

// Stats sums FreeList counters across all size classes.
func (bp *BytePool) Stats() FreeListStats {
	var total FreeListStats
	for _, fl := range bp.classes {
		s := fl.Stats()
		total.Hits += s.Hits
		total.Misses += s.Misses
		total.Drops += s.Drops
	}
	return total
}
