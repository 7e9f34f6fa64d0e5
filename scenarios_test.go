package corotask

import (
	"context"
	"sync"
	"testing"
	"time"

	eventloop "github.com/joeycumines/go-eventloop"
	"golang.org/x/sync/errgroup"
)

// TestS1SynchronousReturn is scenario S1: call(64 KiB, () => 42) then
// await returns 42; the task is freed by the matching Await.
func TestS1SynchronousReturn(t *testing.T) {
	rt, err := NewRuntime(WithDefaultStackHint(64 * 1024))
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	task := rt.Call(64*1024, func() int64 { return 42 })
	if got := rt.Await(task); got != 42 {
		t.Fatalf("Await = %d, want 42", got)
	}
	if task.stateUnsynchronized() != StateReaped {
		t.Fatalf("state after Await = %v, want StateReaped", task.stateUnsynchronized())
	}
}

// TestS2SuspendWakeRoundTrip is scenario S2: a task sets x=7, suspends,
// then returns x+1; from outside, the caller observes done==false before
// waking it, and Await returns 8 afterward.
func TestS2SuspendWakeRoundTrip(t *testing.T) {
	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	task := rt.Call(0, func() int64 {
		x := int64(7)
		rt.Suspend()
		return x + 1
	})

	if task.Done() {
		t.Fatal("task.Done() should be false before it is woken")
	}

	task.Wake()
	if got := rt.Await(task); got != 8 {
		t.Fatalf("Await = %d, want 8", got)
	}
}

// TestS3NestedAwait is scenario S3: an outer task spawns an inner task
// that returns 100 after one suspend; the outer awaits the inner and
// returns inner+1. The driver spawns outer, wakes inner via a shared
// handle obtained from outside, then awaits outer.
func TestS3NestedAwait(t *testing.T) {
	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	var inner *Task
	var innerReady sync.WaitGroup
	innerReady.Add(1)

	outer := rt.Call(0, func() int64 {
		inner = rt.Call(0, func() int64 {
			rt.Suspend()
			return 100
		})
		innerReady.Done()
		return rt.Await(inner) + 1
	})

	innerReady.Wait()
	inner.Wake()

	if got := rt.Await(outer); got != 101 {
		t.Fatalf("Await(outer) = %d, want 101", got)
	}
}

// TestS4CrossThreadWake is scenario S4: thread A spawns task T which
// suspends immediately; thread B calls wake(T) without any synchronization
// beyond having T's handle; thread A's top-level Await(T) completes and
// returns T's result.
func TestS4CrossThreadWake(t *testing.T) {
	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	task := rt.Call(0, func() int64 {
		rt.Suspend()
		return 55
	})

	var g errgroup.Group
	g.Go(func() error {
		task.Wake()
		return nil
	})

	got := rt.Await(task)
	if err := g.Wait(); err != nil {
		t.Fatalf("wake goroutine: %v", err)
	}
	if got != 55 {
		t.Fatalf("Await = %d, want 55", got)
	}
}

// TestS5EventLoopIntegration is scenario S5: with an event loop attached,
// a task T suspends; another goroutine wakes it; the loop's own goroutine
// drains T to completion, and no goroutine ever blocks in
// Runtime.runAllBlocking.
func TestS5EventLoopIntegration(t *testing.T) {
	loop, err := eventloop.New()
	if err != nil {
		t.Fatalf("eventloop.New: %v", err)
	}
	defer loop.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() { runDone <- loop.Run(ctx) }()

	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	if err := rt.AttachEventLoop(loop); err != nil {
		t.Fatalf("AttachEventLoop: %v", err)
	}

	done := make(chan int64, 1)
	task := rt.Call(0, func() int64 {
		rt.Suspend()
		return 9
	})

	go func() {
		time.Sleep(10 * time.Millisecond)
		task.Wake()
	}()

	// Poll from a plain goroutine (Done is safe from any goroutine) so the
	// loop's own goroutine stays free to run the drain that Wake submits.
	go func() {
		for {
			if task.Done() {
				done <- 9
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	select {
	case v := <-done:
		if v != 9 {
			t.Fatalf("observed result %d, want 9", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the event loop to drain task to completion")
	}

	cancel()
	<-runDone
}

// TestS6ForbiddenTopLevelAwaitUnderLoop is scenario S6: with a loop
// attached, a top-level Await call is forbidden because it would starve
// the very loop expected to deliver the wake — it must panic rather than
// block.
func TestS6ForbiddenTopLevelAwaitUnderLoop(t *testing.T) {
	loop, err := eventloop.New()
	if err != nil {
		t.Fatalf("eventloop.New: %v", err)
	}
	defer loop.Close()

	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	if err := rt.AttachEventLoop(loop); err != nil {
		t.Fatalf("AttachEventLoop: %v", err)
	}

	task := rt.Call(0, func() int64 {
		rt.Suspend()
		return 0
	})

	defer func() {
		if r := recover(); r != ErrAwaitWouldBlockLoop {
			t.Fatalf("recovered %v, want ErrAwaitWouldBlockLoop", r)
		}
	}()
	rt.Await(task)
}
