// File: executor/options.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0

package executor

// defaultLocalQueueSize is the per-worker ring capacity when no option
// overrides it.
const defaultLocalQueueSize = 1024

type config struct {
	localQueueSize int
	globalOverflow bool
}

// Option adjusts executor construction.
type Option func(*config)

// WithLocalQueueSize sets the per-worker ring capacity, rounded up to a
// power of two. Non-positive values keep the default.
func WithLocalQueueSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.localQueueSize = n
		}
	}
}

// WithGlobalOverflow controls the unbounded overflow queue. When
// disabled, Submit fails with ErrSaturated once the chosen worker ring
// is full. Enabled by default.
func WithGlobalOverflow(enabled bool) Option {
	return func(c *config) {
		c.globalOverflow = enabled
	}
}
