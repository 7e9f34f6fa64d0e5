package corotask

// TaskState represents the lifecycle state of a Task.
//
// State Machine:
//
//	StateFresh -> StateRunning           [Runtime.Call hands over the baton]
//	StateRunning -> StateSuspended       [Runtime.Suspend, or Runtime.Await on a not-yet-done task]
//	StateSuspended -> StateReady         [Task.Wake]
//	StateReady -> StateRunning           [a drain pops and switches]
//	StateRunning -> StateDone            [the task's entry function returns]
//	StateDone -> StateReaped             [the matching Runtime.Await]
//
// A task only ever enters StateReady via Wake from StateSuspended; it never
// transitions to StateReady directly from StateRunning ("running -> ready:
// never directly" in the data model).
//
// TaskState is derived, not stored: [Task.State] computes it from
// done/nextReady/current-task identity, so there is exactly one source of
// truth for a task's position in the lifecycle.
type TaskState int32

const (
	// StateFresh means the task has been allocated but its goroutine has
	// not yet been handed the baton.
	StateFresh TaskState = iota

	// StateRunning means the task is its owner runtime's current task,
	// i.e. its goroutine currently holds the baton.
	StateRunning

	// StateSuspended means the task's context has been saved (it yielded
	// via Suspend or is being Awaited) and it is not on any ready queue.
	StateSuspended

	// StateReady means the task is enqueued on its owner's ready queue,
	// waiting for a drain to switch into it.
	StateReady

	// StateDone means the task's entry function has returned. Its result
	// is available, but its resources have not yet been released.
	StateDone

	// StateReaped means Runtime.Await observed StateDone and released the
	// task's resources. A reaped task must never be switched into again.
	StateReaped
)

// String returns a human-readable representation of the state.
func (s TaskState) String() string {
	switch s {
	case StateFresh:
		return "Fresh"
	case StateRunning:
		return "Running"
	case StateSuspended:
		return "Suspended"
	case StateReady:
		return "Ready"
	case StateDone:
		return "Done"
	case StateReaped:
		return "Reaped"
	default:
		return "Unknown"
	}
}
