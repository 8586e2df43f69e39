// File: executor/executor_test.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0

package executor

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/wyattgill9/utils/api"
)

func TestSubmitRunsAllTasks(t *testing.T) {
	e := NewExecutor(4)

	var count atomic.Int64
	const tasks = 1000
	for i := 0; i < tasks; i++ {
		if err := e.Submit(func() { count.Add(1) }); err != nil {
			t.Fatalf("Submit #%d: %v", i, err)
		}
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := count.Load(); got != tasks {
		t.Fatalf("ran %d tasks, want %d", got, tasks)
	}
}

func TestSubmitNilRejected(t *testing.T) {
	e := NewExecutor(1)
	defer e.Close()

	if err := e.Submit(nil); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("Submit(nil) = %v, want ErrInvalidArgument", err)
	}
}

func TestSubmitAfterClose(t *testing.T) {
	e := NewExecutor(2)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := e.Submit(func() {}); !errors.Is(err, api.ErrExecutorClosed) {
		t.Fatalf("Submit after Close = %v, want ErrExecutorClosed", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	e := NewExecutor(2)
	if err := e.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestOverflowSpillsToGlobal(t *testing.T) {
	e := NewExecutor(1, WithLocalQueueSize(2))

	// Park the only worker so the local ring fills up.
	gate := make(chan struct{})
	if err := e.Submit(func() { <-gate }); err != nil {
		t.Fatalf("Submit gate task: %v", err)
	}

	var count atomic.Int64
	const tasks = 10
	for i := 0; i < tasks; i++ {
		if err := e.Submit(func() { count.Add(1) }); err != nil {
			t.Fatalf("Submit #%d: %v", i, err)
		}
	}

	close(gate)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := count.Load(); got != tasks {
		t.Fatalf("ran %d tasks, want %d", got, tasks)
	}
	if s := e.Stats(); s.Overflowed == 0 {
		t.Fatal("expected spills to the global queue, Overflowed = 0")
	}
}

func TestSaturationWithoutOverflow(t *testing.T) {
	e := NewExecutor(1, WithLocalQueueSize(2), WithGlobalOverflow(false))

	gate := make(chan struct{})
	if err := e.Submit(func() { <-gate }); err != nil {
		t.Fatalf("Submit gate task: %v", err)
	}

	// The parked worker leaves at most 2 ring slots; keep submitting
	// until the ring rejects.
	var sawSaturated bool
	for i := 0; i < 8; i++ {
		err := e.Submit(func() {})
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrSaturated) {
			t.Fatalf("Submit = %v, want ErrSaturated", err)
		}
		sawSaturated = true
		break
	}
	if !sawSaturated {
		t.Fatal("never hit ErrSaturated with overflow disabled")
	}

	close(gate)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestPanickingTaskKeepsWorkerAlive(t *testing.T) {
	e := NewExecutor(1)

	if err := e.Submit(func() { panic("boom") }); err != nil {
		t.Fatalf("Submit panicking task: %v", err)
	}
	var ran atomic.Bool
	if err := e.Submit(func() { ran.Store(true) }); err != nil {
		t.Fatalf("Submit follow-up task: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if !ran.Load() {
		t.Fatal("worker died after a panicking task")
	}
}

func TestNumWorkers(t *testing.T) {
	e := NewExecutor(3)
	defer e.Close()
	if e.NumWorkers() != 3 {
		t.Fatalf("NumWorkers = %d, want 3", e.NumWorkers())
	}

	d := NewExecutor(0)
	defer d.Close()
	if d.NumWorkers() <= 0 {
		t.Fatalf("default NumWorkers = %d, want > 0", d.NumWorkers())
	}
}

func TestStatsAccounting(t *testing.T) {
	e := NewExecutor(2)

	const tasks = 100
	for i := 0; i < tasks; i++ {
		if err := e.Submit(func() {}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s := e.Stats()
	if s.Submitted != tasks || s.Completed != tasks {
		t.Fatalf("Stats = %+v, want %d submitted and completed", s, tasks)
	}
	if s.Pending != 0 {
		t.Fatalf("Pending = %d after Close, want 0", s.Pending)
	}
	if s.Workers != 2 {
		t.Fatalf("Workers = %d, want 2", s.Workers)
	}
}

func TestConcurrentSubmitters(t *testing.T) {
	e := NewExecutor(4, WithLocalQueueSize(8))

	const (
		submitters = 8
		perSub     = 1000
	)
	var sum atomic.Int64
	var wg sync.WaitGroup
	for g := 0; g < submitters; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perSub; i++ {
				v := int64(base*perSub + i)
				if err := e.Submit(func() { sum.Add(v) }); err != nil {
					t.Errorf("Submit: %v", err)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	total := int64(submitters * perSub)
	want := total * (total - 1) / 2
	if got := sum.Load(); got != want {
		t.Fatalf("Checksum mismatch: got %d, want %d", got, want)
	}
}
