package lfs

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStack_LIFO(t *testing.T) {
	s := NewStack[int]()
	for i := 1; i <= 100; i++ {
		s.Push(i)
	}
	for i := 100; i >= 1; i-- {
		v, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop failed with %d items remaining", i)
		}
		if v != i {
			t.Fatalf("LIFO order broken: want %d, got %d", i, v)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop on drained stack must report empty")
	}
}

func TestStack_EmptyBehavior(t *testing.T) {
	var s Stack[string]
	if !s.Empty() {
		t.Fatal("zero-value stack must be empty")
	}
	if v, ok := s.Pop(); ok || v != "" {
		t.Fatalf("Pop on empty stack: got (%q, %v)", v, ok)
	}
	s.Push("a")
	if s.Empty() {
		t.Fatal("stack with one item must not report empty")
	}
	s.Pop()
	if !s.Empty() {
		t.Fatal("drained stack must report empty")
	}
}

func TestStack_Reset(t *testing.T) {
	s := NewStack[int]()
	for i := 0; i < 64; i++ {
		s.Push(i)
	}
	s.Reset()
	if !s.Empty() {
		t.Fatal("Reset must leave the stack empty")
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop after Reset must report empty")
	}
	s.Push(7)
	if v, ok := s.Pop(); !ok || v != 7 {
		t.Fatalf("stack unusable after Reset: got (%d, %v)", v, ok)
	}
}

func TestStack_MPMC(t *testing.T) {
	s := NewStack[int]()
	producers := 8
	consumers := 8
	itemsPerProducer := 10000

	var wg sync.WaitGroup
	var sentSum int64
	var receivedSum int64
	var receivedCount int64
	totalItems := int64(producers * itemsPerProducer)

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				val := pid*itemsPerProducer + i + 1
				s.Push(val)
				atomic.AddInt64(&sentSum, int64(val))
			}
		}(p)
	}

	consumerWg := sync.WaitGroup{}
	for c := 0; c < consumers; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				if val, ok := s.Pop(); ok {
					atomic.AddInt64(&receivedSum, int64(val))
					if atomic.AddInt64(&receivedCount, 1) == totalItems {
						return
					}
				} else {
					if atomic.LoadInt64(&receivedCount) >= totalItems {
						return
					}
					runtime.Gosched()
				}
			}
		}()
	}

	wg.Wait()

	done := make(chan struct{})
	go func() {
		consumerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if sentSum != receivedSum {
			t.Errorf("Checksum mismatch: sent %d, received %d", sentSum, receivedSum)
		}
	case <-time.After(5 * time.Second):
		t.Errorf("Timeout waiting for consumers. Received %d/%d", atomic.LoadInt64(&receivedCount), totalItems)
	}
}

func TestStack_AbandonWithoutDrain(t *testing.T) {
	s := NewStack[[]byte]()
	for i := 0; i < 1024; i++ {
		s.Push(make([]byte, 128))
	}
	s = nil
	_ = s
	runtime.GC()
}
