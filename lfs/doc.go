// File: lfs/doc.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Package lfs implements lock-free concurrent containers: a Treiber stack,
// a Michael-Scott unbounded FIFO queue, and a bounded MPMC ring buffer.
//
// All operations are non-blocking compare-and-swap retry loops with a
// progressive yield between failed attempts, so the containers guarantee
// system-wide progress under arbitrary concurrent producers and consumers.
// Unlinked heap nodes are reclaimed by the garbage collector and never
// reused.
package lfs
