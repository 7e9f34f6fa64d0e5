package corotask

// switch.go is the Go-native analogue of spec §4.1's context switcher. A
// task's dedicated resume channel replaces saved_context/jmp_buf; handing
// the baton is a channel send, and "resuming" is the matching receive
// unblocking. There is no separate first-entry/resumed tag to branch on:
// the goroutine closure passed to go func(){...} already is the
// first-entry body, and the code textually following a <-resume receive
// already is the resumed branch — exactly the two-return semantics spec
// §9 calls for, expressed with ordinary control flow instead of a tagged
// return value.

// spawnAndEnter starts t's goroutine, parked on its own resume channel,
// then hands it the baton. The caller becomes the "from" side of the
// hand-off and blocks on its own resume channel until t switches away
// (on suspension or completion) back to it or whoever it hands off to.
func spawnAndEnter(rt *Runtime, from, t *Task) {
	go func() {
		<-t.resume
		rt.claimBaton()
		t.run()
	}()
	switchTo(rt, from, t)
}

// switchTo hands the baton to "to" and parks the calling goroutine on
// "from"'s resume channel until some later hand-off wakes it again. The
// code following a switchTo call is exactly the "resumed" branch of
// spec §4.1's capture/jump primitive.
func switchTo(rt *Runtime, from, to *Task) {
	rt.currentTask = to
	to.resume <- struct{}{}
	<-from.resume
	rt.claimBaton()
}

// finishTo hands the baton to "to" on behalf of a task whose goroutine is
// retiring for good — its entry function has returned or panicked, so it
// will never be switched into again. Unlike switchTo, the caller does not
// block afterward; its goroutine is expected to return immediately.
func finishTo(rt *Runtime, to *Task) {
	rt.currentTask = to
	to.resume <- struct{}{}
}

// run is a task's trampoline: spec §4.1's "entry trampoline". It invokes
// entry(), records the result (or a recovered panic), marks done, and
// switches away to whichever task should regain control — the pending
// Await (awaiting) if one is set, else whoever most recently resumed this
// task (caller). The goroutine returns (and so exits) immediately after,
// since a finished task's goroutine is never resumed again.
func (t *Task) run() {
	rt := t.owner

	func() {
		defer func() {
			if r := recover(); r != nil {
				rt.metrics.recordEntryPanic()
				logTaskPanicked(rt, t, r)
				t.panicVal = &TaskPanic{Value: r, TaskID: t.id}
			}
		}()
		t.result = t.entry()
	}()

	t.done.Store(true)
	if t.panicVal == nil {
		logTaskDone(rt, t)
	}

	next := t.caller
	if t.awaiting != nil {
		next = t.awaiting
	}
	finishTo(rt, next)
}
