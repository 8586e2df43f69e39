// File: executor/doc.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0

// Package executor dispatches tasks across worker goroutines, using
// lock-free local rings with an unbounded lock-free overflow queue.
// Workers poll their own ring first, then the shared queue, and back
// off progressively when idle.
package executor
