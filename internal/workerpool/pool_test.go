package workerpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func shutdown(p *Pool, ctx context.Context) {
	p.StopAccepting()
	p.Drain(ctx)
}

func TestSubmitAndDrain(t *testing.T) {
	p := New(2, 10)
	var count atomic.Int32

	for i := 0; i < 5; i++ {
		ok := p.Submit("pid-1", func() {
			count.Add(1)
		})
		if !ok {
			t.Fatalf("Submit %d failed", i)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	shutdown(p, ctx)

	if got := count.Load(); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
}

func TestSubmitAfterStopAcceptingReturnsFalse(t *testing.T) {
	p := New(1, 1)
	p.StopAccepting()

	if p.Submit("pid-1", func() {}) {
		t.Fatal("Submit after StopAccepting should return false")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Drain(ctx)
}

func TestQueueFullReturnsFalse(t *testing.T) {
	p := New(1, 1)
	// Block the worker
	blocker := make(chan struct{})
	p.Submit("pid-1", func() { <-blocker })

	// Fill the queue
	time.Sleep(10 * time.Millisecond) // let worker pick up first task
	p.Submit("pid-1", func() {})      // fills the queue (size 1)

	// This should fail — queue full
	if p.Submit("pid-1", func() {}) {
		t.Fatal("Submit should return false when queue is full")
	}

	close(blocker)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	shutdown(p, ctx)
}

func TestDrainWithoutStopAcceptingStillWaits(t *testing.T) {
	p := New(1, 10)
	var ran atomic.Bool
	p.Submit("pid-1", func() { ran.Store(true) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Drain without StopAccepting first: it still waits out queued work.
	// Drain also closes the queue, so StopAccepting has to run before any
	// later Submit for that Submit to be rejected cleanly.
	p.Drain(ctx)

	if !ran.Load() {
		t.Fatal("Drain returned before the queued task ran")
	}

	p.StopAccepting()
	if p.Submit("pid-1", func() {}) {
		t.Fatal("Submit should return false once StopAccepting has run")
	}
}

func TestDrainRespectsContextDeadline(t *testing.T) {
	p := New(1, 10)
	blocker := make(chan struct{})
	p.Submit("pid-1", func() { <-blocker })

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	p.StopAccepting()
	p.Drain(ctx)
	elapsed := time.Since(start)

	if elapsed > 500*time.Millisecond {
		t.Fatalf("Drain should have timed out in ~100ms, took %v", elapsed)
	}

	close(blocker) // cleanup
}

func TestSingleWorkerDrainDoesNotDeadlock(t *testing.T) {
	p := New(1, 10)
	var count atomic.Int32

	for i := 0; i < 5; i++ {
		p.Submit("pid-1", func() {
			time.Sleep(1 * time.Millisecond)
			count.Add(1)
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	shutdown(p, ctx)

	if got := count.Load(); got != 5 {
		t.Fatalf("single-worker drain: count = %d, want 5", got)
	}
}

func TestPanicRecovery(t *testing.T) {
	p := New(1, 10)
	var count atomic.Int32

	// Submit a panicking task
	p.Submit("pid-1", func() {
		panic("test panic")
	})
	// Submit a normal task after
	p.Submit("pid-1", func() {
		count.Add(1)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	shutdown(p, ctx)

	if got := count.Load(); got != 1 {
		t.Fatalf("task after panic: count = %d, want 1", got)
	}
}
