package corotask

import (
	"errors"
	"fmt"
)

// Sentinel errors used as panic payloads for programmer-error conditions.
// See spec section 7 (Error Handling Design): these are assertion failures,
// not recoverable error returns — the runtime surfaces no recoverable
// errors from its owner-only operations.
var (
	// ErrNotOwner is the panic payload when an owner-only operation (Call,
	// Await, Suspend, CurrentTask, Task.State, Close, or an attach/detach
	// method) is invoked from a goroutine that is not currently holding the
	// runtime's baton. Wake is the only public operation exempt from this
	// check; the internal drains do not check it either, since an attached
	// loop or queue runs them on its own goroutine.
	ErrNotOwner = errors.New("corotask: operation invoked from a non-owner goroutine")

	// ErrAwaitWouldBlockLoop is the panic payload when Await is called at
	// top level (outside of any Call) while an external event loop or work
	// queue is attached. Blocking here would starve the very loop that
	// must deliver the wake that unblocks it.
	ErrAwaitWouldBlockLoop = errors.New("corotask: top-level Await is forbidden while an external loop is attached")

	// ErrSuspendAtTopLevel is the panic payload when Suspend is called on
	// the sentinel root task (i.e. outside of any Call). The original
	// source's behavior here is an unguarded jump to a null context; this
	// rewrite treats it explicitly as a programmer error instead.
	ErrSuspendAtTopLevel = errors.New("corotask: Suspend called at top level, outside of any Call")

	// ErrAlreadyAwaited is the panic payload when a second, concurrent
	// Await observes that a task's awaiting slot is already occupied. The
	// awaiting slot holds exactly one waiter.
	ErrAlreadyAwaited = errors.New("corotask: task is already being awaited by another task")

	// ErrRuntimeClosed is the panic payload when Call, CallClosure or
	// CallClosureRetained is invoked on a Runtime that has already been
	// closed via Runtime.Close.
	ErrRuntimeClosed = errors.New("corotask: runtime is closed")
)

// TaskPanic wraps a value recovered from a task's entry function so it can
// propagate across the baton hand-off to the Runtime.Await that reaps the
// task, which re-panics with it. Spec section 7 requires entry-function
// panics to be "uncaught" and propagate as a host-defined fault with no
// recovery; TaskPanic is the vehicle that carries the original panic value
// to that Await without Go silently swallowing it at the task's goroutine
// boundary.
type TaskPanic struct {
	// Value is the original value passed to panic inside the task's entry
	// function.
	Value any

	// TaskID identifies the task whose entry function panicked, for
	// logging and diagnosis.
	TaskID uint64
}

// Error implements the error interface so TaskPanic can be recovered and
// inspected with errors.As by a caller that chooses to add its own
// recovery, despite the default behavior being to re-panic.
func (p *TaskPanic) Error() string {
	return fmt.Sprintf("corotask: task %d entry function panicked: %v", p.TaskID, p.Value)
}

// Unwrap returns the underlying error if the panic value is itself an
// error, enabling errors.Is/errors.As to see through to the original cause.
func (p *TaskPanic) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}
