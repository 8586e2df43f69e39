// Author: wyattgill9 <wyattgill9@gmail.com>

package pool

import "sync"

// defaultClassCapacity is the per-class free buffer count of the shared
// pool.
const defaultClassCapacity = 256

var (
	defaultOnce sync.Once
	defaultPool *BytePool
)

// Default returns a process-wide BytePool so components share size
// classes instead of fragmenting their own pools.
func Default() *BytePool {
	defaultOnce.Do(func() {
		defaultPool = NewBytePool(defaultClassCapacity)
	})
	return defaultPool
}
