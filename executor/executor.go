// File: executor/executor.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Executor dispatches tasks across worker goroutines, using lock-free
// local rings and an unbounded lock-free queue as overflow.

package executor

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wyattgill9/utils/api"
	"github.com/wyattgill9/utils/lfs"
)

// Ensure compile-time interface compliance.
var _ api.Executor = (*Executor)(nil)

// Task is a unit of work to execute.
type Task func()

// Executor manages a pool of worker goroutines.
type Executor struct {
	global    *lfs.Queue[Task] // overflow for tasks when local rings are full
	locals    []*lfs.Ring[Task]
	workers   []*worker
	closeCh   chan struct{}
	closed    atomic.Bool
	wg        sync.WaitGroup
	useGlobal bool

	// statistics; submitted doubles as the round-robin cursor
	submitted  atomic.Uint64
	completed  atomic.Uint64
	overflowed atomic.Uint64
}

// Stats is a point-in-time counter snapshot.
type Stats struct {
	Submitted  uint64 // tasks accepted by Submit
	Completed  uint64 // tasks that finished running
	Pending    uint64 // accepted but not yet finished
	Overflowed uint64 // tasks that spilled to the global queue
	Workers    int
}

// NewExecutor creates an Executor with the given number of workers.
// If numWorkers <= 0, it defaults to runtime.NumCPU().
func NewExecutor(numWorkers int, opts ...Option) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	cfg := config{
		localQueueSize: defaultLocalQueueSize,
		globalOverflow: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Executor{
		global:    lfs.NewQueue[Task](),
		locals:    make([]*lfs.Ring[Task], numWorkers),
		workers:   make([]*worker, numWorkers),
		closeCh:   make(chan struct{}),
		useGlobal: cfg.globalOverflow,
	}
	for i := range e.locals {
		e.locals[i] = lfs.NewRing[Task](cfg.localQueueSize)
	}
	for i := range e.workers {
		w := &worker{
			executor: e,
			local:    e.locals[i],
		}
		e.workers[i] = w
		e.wg.Add(1)
		go w.run()
	}
	return e
}

// Submit enqueues a task, round-robining across the worker rings and
// spilling to the global queue when the chosen ring is full. Returns
// api.ErrExecutorClosed after Close and ErrSaturated when overflow is
// disabled and the ring is full.
func (e *Executor) Submit(task func()) error {
	if task == nil {
		return api.ErrInvalidArgument
	}
	if e.closed.Load() {
		return api.ErrExecutorClosed
	}
	idx := int(e.submitted.Add(1) % uint64(len(e.locals)))
	if e.locals[idx].Enqueue(task) {
		return nil
	}
	if !e.useGlobal {
		e.submitted.Add(^uint64(0)) // roll back the rejected submit
		return ErrSaturated
	}
	e.global.Enqueue(task)
	e.overflowed.Add(1)
	return nil
}

// NumWorkers returns the number of worker goroutines.
func (e *Executor) NumWorkers() int {
	return len(e.workers)
}

// Close stops intake, lets the workers drain every queued task, and
// joins them. Idempotent. A Submit racing Close may leave its task
// unexecuted.
func (e *Executor) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(e.closeCh)
	e.wg.Wait()
	return nil
}

// Stats returns basic executor metrics.
func (e *Executor) Stats() Stats {
	sub := e.submitted.Load()
	comp := e.completed.Load()
	pending := uint64(0)
	if sub > comp {
		pending = sub - comp
	}
	return Stats{
		Submitted:  sub,
		Completed:  comp,
		Pending:    pending,
		Overflowed: e.overflowed.Load(),
		Workers:    len(e.workers),
	}
}

// worker represents a single executor goroutine.
type worker struct {
	executor *Executor
	local    *lfs.Ring[Task]
	idles    int
}

// run polls the local ring, then the global queue, backing off while
// both stay empty. After Close it drains everything left and exits.
func (w *worker) run() {
	defer w.executor.wg.Done()
	for {
		if task, ok := w.local.Dequeue(); ok {
			w.executeTask(task)
			continue
		}
		if task, ok := w.executor.global.Dequeue(); ok {
			w.executeTask(task)
			continue
		}
		select {
		case <-w.executor.closeCh:
			w.drain()
			return
		default:
			w.idleWait()
		}
	}
}

// drain empties the local ring and the global queue before shutdown.
func (w *worker) drain() {
	for {
		if task, ok := w.local.Dequeue(); ok {
			w.executeTask(task)
			continue
		}
		if task, ok := w.executor.global.Dequeue(); ok {
			w.executeTask(task)
			continue
		}
		return
	}
}

// idleWait escalates from spinning through yields to brief sleeps as
// the idle streak grows. Finding work resets the streak.
func (w *worker) idleWait() {
	switch {
	case w.idles < 4:
		// spin
	case w.idles < 64:
		runtime.Gosched()
	default:
		time.Sleep(50 * time.Microsecond)
	}
	if w.idles < 1<<20 {
		w.idles++
	}
}

// executeTask runs the task and updates statistics, recovering from
// panics to keep the worker alive.
func (w *worker) executeTask(task Task) {
	w.idles = 0
	defer func() {
		if r := recover(); r != nil {
			// swallow panic to keep the worker alive
		}
		w.executor.completed.Add(1)
	}()
	task()
}
