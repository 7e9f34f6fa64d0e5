package corotask

// drain.go implements spec §4.6's two drain steps. Both pop one ready
// task and switch into it, reparenting it to the draining task (popped's
// caller becomes whoever was running at drain time) — this is the
// "caller: set on every context switch into the task" invariant from
// spec §3 applied to resumption, not just first entry.

// runNext performs one non-blocking drain step: if the ready queue is
// non-empty, pop its head and switch into it, returning once that task
// suspends or completes. Returns false if the queue was empty. Used by
// the external-loop and work-queue integrations, which loop "while
// runNext() {}" to service every currently runnable task before
// returning control to the loop/queue.
func (rt *Runtime) runNext() bool {
	rt.registry.Scavenge(8)

	rt.qMutex.Lock()
	popped := rt.popReadyLocked()
	rt.qMutex.Unlock()

	if popped == nil {
		logDrainStep(rt, false, false)
		return false
	}

	rt.metrics.recordDrainStep()
	logDrainStep(rt, false, true)

	cur := rt.currentTask
	popped.caller = cur
	switchTo(rt, cur, popped)
	return true
}

// runAllBlocking performs one blocking drain step: waits on the ready
// queue's condition variable if it is empty, then pops and switches into
// the head exactly as runNext does. Used once per iteration of a
// top-level Await's wait loop, which itself re-checks the awaited task's
// done flag. Must never be called while an external loop or work queue is
// attached — Await enforces this before calling in.
func (rt *Runtime) runAllBlocking() bool {
	rt.qMutex.Lock()
	for rt.readyQ == nil {
		rt.qCond.Wait()
	}
	popped := rt.popReadyLocked()
	rt.qMutex.Unlock()

	rt.metrics.recordDrainStep()
	logDrainStep(rt, true, true)

	cur := rt.currentTask
	popped.caller = cur
	switchTo(rt, cur, popped)
	return true
}
