// File: lfs/stack.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Treiber stack: concurrent LIFO over a CAS-published top pointer.

package lfs

import (
	"sync/atomic"

	"github.com/wyattgill9/utils/api"
)

// Ensure compile-time interface compliance.
var _ api.Stack[any] = (*Stack[any])(nil)

// Stack is a lock-free LIFO container. The zero value is an empty stack
// ready for use.
//
// Nodes are allocated per Push and never recycled; an unlinked node is
// reclaimed by the garbage collector once no goroutine can reach it.
// Recycling nodes would reintroduce the ABA problem on the top pointer.
type Stack[T any] struct {
	top atomic.Pointer[snode[T]]
}

type snode[T any] struct {
	value T
	next  *snode[T]
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds value on top. It always succeeds.
func (s *Stack[T]) Push(value T) {
	n := &snode[T]{value: value}
	var sp spinner
	for {
		n.next = s.top.Load()
		if s.top.CompareAndSwap(n.next, n) {
			return
		}
		sp.spin()
	}
}

// Pop removes and returns the most recently pushed value.
// It returns ok == false immediately when the stack is empty.
func (s *Stack[T]) Pop() (value T, ok bool) {
	var sp spinner
	for {
		top := s.top.Load()
		if top == nil {
			var zero T
			return zero, false
		}
		if s.top.CompareAndSwap(top, top.next) {
			return top.value, true
		}
		sp.spin()
	}
}

// Empty reports whether the stack held no items at the moment of the call.
func (s *Stack[T]) Empty() bool {
	return s.top.Load() == nil
}

// Reset detaches every linked node in one step and leaves the stack empty.
// The detached chain is reclaimed by the garbage collector.
func (s *Stack[T]) Reset() {
	s.top.Store(nil)
}
