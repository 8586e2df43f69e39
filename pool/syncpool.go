// Author: wyattgill9 <wyattgill9@gmail.com>

package pool

import (
	"sync"

	"github.com/wyattgill9/utils/api"
)

// SyncPool wraps sync.Pool for generic usage. Unlike FreeList it has no
// capacity bound; the runtime trims it between GC cycles.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

var _ api.ObjectPool[any] = (*SyncPool[any])(nil)
