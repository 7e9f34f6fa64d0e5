// Package corotask provides a per-goroutine-affine stackful coroutine
// runtime, offering cooperative Call/Await/Suspend/Wake primitives on top
// of ordinary goroutines.
//
// # Architecture
//
// A [Runtime] owns a ready queue and a "baton": exactly one goroutine
// belonging to that runtime is ever runnable at a time, handed off between
// a [Task]'s dedicated resume channel and whichever goroutine most recently
// switched into it ([Runtime.Call], [Runtime.Await], [Runtime.Suspend], the
// drains). This replaces the assembly-level stack-install/longjmp pair a
// traditional stackful coroutine library needs with the Go runtime's own
// goroutine scheduler, which already provides independently growable
// stacks and preserves stack-local state across suspension.
//
// # Task Lifecycle
//
// [Runtime.Call] spawns a task and runs it immediately until its first
// suspension or completion. [Runtime.Suspend] yields back to the task that
// most recently resumed the caller. [Task.Wake] is the only operation
// safe to call from any goroutine; it enqueues the task on its owner
// [Runtime]'s ready queue and notifies the owner. [Runtime.Await] blocks (or
// cooperates, if invoked from within another task) until the awaited task
// completes, then reaps it exactly once.
//
// # External Integration
//
// A [Runtime] may optionally be attached to an external event loop
// ([Runtime.AttachEventLoop] — see eventloopadapter.go, wired against
// github.com/joeycumines/go-eventloop) or a serial work queue
// ([Runtime.AttachWorkQueue], see workqueue.go), so that cross-goroutine
// wakes are delivered on the owning goroutine without a foreign caller
// ever blocking in [Runtime.Await]. At most one of {none, event loop, work
// queue} is attached at a time.
//
// # Thread Safety
//
// [Task.Wake] is safe to call from any goroutine. The owner-only
// operations ([Runtime.Call], [Runtime.CallClosure], [Runtime.Await],
// [Runtime.Suspend], [Runtime.CurrentTask], the attach/detach methods) must
// only be called from a goroutine currently holding that runtime's baton —
// calling them otherwise panics with [ErrNotOwner].
//
// # Non-goals
//
// This package does not implement work-stealing, preemption, task
// migration between runtimes, fairness beyond ready-queue FIFO,
// cancellation, or timeouts. Timers, I/O adapters, futures, and any
// specific network/IO subsystem integration are external collaborators,
// not part of this package.
package corotask
