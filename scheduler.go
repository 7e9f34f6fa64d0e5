package corotask

import "io"

// Call spawns a task running entry and transfers control to it
// immediately, returning only once the new task first suspends or
// completes — spec §4.2's "runs immediately until first suspension or
// completion" contract. stackSize is accepted for API parity with the
// source's stack_size input and is otherwise ignored: it does not size an
// actual stack, since the task's goroutine grows its own stack on demand,
// and it is neither stored on the task nor logged.
func (rt *Runtime) Call(stackSize int, entry func() int64) *Task {
	return rt.callSpawn(stackSize, entry, nil)
}

// CallClosure is the closure-taking variant of Call. In this rewrite it
// behaves identically to Call — a Go closure already carries its captured
// arguments, so there is no separate entry/arg pair to distinguish as the
// source does.
func (rt *Runtime) CallClosure(stackSize int, closure func() int64) *Task {
	return rt.callSpawn(stackSize, closure, nil)
}

// CallClosureRetained is CallClosure plus an optional foreign ownership
// handle (spec §3's retained field): retained.Close is called exactly
// once, by the Await that reaps the task, generalizing the source's
// reference-counted CFTypeRef handle to Go's io.Closer.
func (rt *Runtime) CallClosureRetained(stackSize int, closure func() int64, retained io.Closer) *Task {
	return rt.callSpawn(stackSize, closure, retained)
}

func (rt *Runtime) callSpawn(stackSize int, entry func() int64, retained io.Closer) *Task {
	rt.checkOwner()
	if rt.closed.Load() {
		panic(ErrRuntimeClosed)
	}
	_ = stackSize // see Call's doc comment; accepted for parity only

	t := &Task{
		owner:    rt,
		entry:    entry,
		retained: retained,
		resume:   make(chan struct{}, 1),
	}
	t.id = rt.registry.register(t)

	rt.metrics.recordCall()
	logTaskSpawned(rt, t)

	caller := rt.currentTask
	t.caller = caller
	debugCycleCheck(t)
	spawnAndEnter(rt, caller, t)

	return t
}

// Await blocks (at top level) or cooperates (nested inside another task)
// until task completes, then reaps it: releases its retained handle,
// marks it reaped (its registry entry is dropped by a later Scavenge
// pass), and returns its result — spec §4.3,
// executed exactly on the owning goroutine.
//
// Calling Await on the same task from two tasks concurrently panics with
// ErrAlreadyAwaited on the second call to observe the conflict, per spec
// §7/§8 ("the awaiting slot holds exactly one waiter").
func (rt *Runtime) Await(task *Task) int64 {
	rt.checkOwner()
	if task.owner != rt {
		panic(ErrNotOwner)
	}

	a := rt.currentTask
	for !task.done.Load() {
		if task.awaiting != nil {
			panic(ErrAlreadyAwaited)
		}
		task.awaiting = a
		if a.caller == nil {
			// Top-level await: nothing to yield to, so we must block
			// (spec §4.3's "run_all_blocking" branch) — forbidden
			// outright if an external loop would be starved by it.
			if rt.external != nil {
				panic(ErrAwaitWouldBlockLoop)
			}
			rt.runAllBlocking()
		} else {
			switchTo(rt, a, a.caller)
		}
		task.awaiting = nil
	}

	rt.metrics.recordAwait()
	return rt.reap(task)
}

// reap releases task's resources exactly once — spec §3's "released
// exactly once, by the await that observes done" invariant — and returns
// its result. If the task's entry function panicked, the panic is
// re-raised here, in the reaping goroutine, after resources are released.
func (rt *Runtime) reap(t *Task) int64 {
	result := t.result
	panicVal := t.panicVal

	if t.retained != nil {
		_ = t.retained.Close()
		t.retained = nil
	}
	t.reaped.Store(true)
	rt.metrics.recordReaped()
	logTaskReaped(rt, t)

	if panicVal != nil {
		panic(panicVal)
	}
	return result
}

// Suspend yields control back to the current task's caller — spec §4.4.
// A suspended task is only ever scheduled again via Wake; there is no
// implicit timer. Calling Suspend at top level (outside any Call) panics
// with ErrSuspendAtTopLevel, since there is no caller to yield to.
// Owner-only.
func (rt *Runtime) Suspend() {
	cur := rt.CurrentTask()
	if cur.caller == nil {
		panic(ErrSuspendAtTopLevel)
	}
	logTaskSuspended(rt, cur)
	switchTo(rt, cur, cur.caller)
}

// Wake makes task runnable: it is the one operation in this package safe
// to call from any goroutine, per spec §4.5/§5/§8. It enqueues task onto
// its owner's ready queue (a no-op if already enqueued — the coalescing
// spec §4.5/§8 property 5 requires) and notifies the owner according to
// whichever external source (if any) is attached.
//
// Waking a task that is already done (but not yet reaped) is a true
// no-op: the task's goroutine has already retired via finishTo and will
// never again receive on its resume channel, so enqueuing it would hand a
// later drain's switchTo a baton nothing is left alive to answer,
// deadlocking the drain. Spec §7's "harmless no-op" policy is honored by
// never touching the ready queue here, not by enqueuing anyway.
func (t *Task) Wake() {
	rt := t.owner

	if t.done.Load() {
		logWakeOnDoneTask(rt, t)
		return
	}

	rt.qMutex.Lock()
	coalesced := rt.enqueueReadyLocked(t)
	rt.qMutex.Unlock()

	rt.metrics.recordWake(coalesced)
	if coalesced {
		logWakeCoalesced(rt, t)
	} else {
		logWakeEnqueued(rt, t)
	}

	rt.notify()
}
