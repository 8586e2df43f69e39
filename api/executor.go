// Package api
// Author: wyattgill9
//
// Executor contract for parallel task dispatch.

package api

// Executor abstracts parallel task execution over a fixed worker set.
type Executor interface {
	// Submit schedules task for execution. Returns ErrExecutorClosed
	// after Close.
	Submit(task func()) error

	// NumWorkers returns the number of worker goroutines.
	NumWorkers() int

	// Close stops intake, drains pending tasks and joins the workers.
	Close() error
}
