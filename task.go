package corotask

import (
	"io"
	"sync/atomic"
)

// Task is a coroutine: an independent goroutine cooperatively scheduled by
// its owner [Runtime]. A Task is created by [Runtime.Call] or
// [Runtime.CallClosure] and destroyed by the matching [Runtime.Await].
type Task struct {
	id    uint64
	owner *Runtime

	done   atomic.Bool
	reaped atomic.Bool
	result int64

	// resume is the baton channel: exactly one send/receive pair happens
	// per hand-off into or out of this task. Capacity 1 so a hand-off
	// into a task that hasn't yet reached its receive does not deadlock
	// the sender during the brief window between spawning the goroutine
	// and its first receive.
	resume chan struct{}

	entry    func() int64
	retained io.Closer

	// panicVal is set by run() if entry panicked; surfaced by the Await
	// that reaps this task.
	panicVal *TaskPanic

	// caller is the task most recently switched into this one: set by
	// Call on first entry, and by every drain that resumes a previously
	// suspended task. Read by the trampoline's completion switch, by
	// Suspend, and by Await (a nil caller marks a top-level Await).
	caller *Task

	// awaiting is the task (if any) currently blocked in Await on this
	// one. Set on entering Await's wait loop, cleared on each resume.
	awaiting *Task

	// nextReady links this task into its owner's circular ready queue.
	// Non-nil iff the task is currently enqueued.
	nextReady *Task
}

// ID returns the task's stable identity, used for logging, metrics, and
// registry lookups. IDs are assigned in creation order starting at 1; 0 is
// never a valid task ID.
func (t *Task) ID() uint64 { return t.id }

// Owner returns the Runtime that created and exclusively schedules this
// task.
func (t *Task) Owner() *Runtime { return t.owner }

// Done reports whether the task's entry function has returned (or
// panicked). Safe to call from any goroutine.
func (t *Task) Done() bool { return t.done.Load() }

// State returns the task's current TaskState. Owner-only, since the
// underlying reads are only safe from the goroutine holding the owner
// Runtime's baton; call [Task.Done] instead if you need a state check from
// a foreign goroutine.
func (t *Task) State() TaskState {
	t.owner.checkOwner()
	return t.stateUnsynchronized()
}

// stateUnsynchronized derives this task's TaskState from fields that are
// only safe to read from the owner goroutine (caller, nextReady,
// owner.currentTask) plus the atomic done/reaped flags. It is called
// "unsynchronized" because it takes no lock; every call site in this
// package only invokes it from the owner goroutine (the registry
// scavenger runs inline with drains, never from a foreign goroutine),
// which makes the unlocked reads safe under Go's happens-before rules for
// single-goroutine sequential access.
func (t *Task) stateUnsynchronized() TaskState {
	switch {
	case t.reaped.Load():
		return StateReaped
	case t.done.Load():
		return StateDone
	case t.nextReady != nil:
		return StateReady
	case t.owner != nil && t.owner.currentTask == t:
		return StateRunning
	default:
		return StateSuspended
	}
}
