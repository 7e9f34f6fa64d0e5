package corotask

import (
	"runtime"
	"sync"
	"sync/atomic"
)

var runtimeIDCounter atomic.Uint64

// Runtime is a per-goroutine-affine coroutine scheduler. Spec's "per-thread
// runtime" is reinterpreted here as "per owning-goroutine-lineage": a
// Runtime is created by one goroutine, and thereafter exactly one
// goroutine at a time holds its baton — not necessarily the same physical
// goroutine from one owner-only call to the next, since Call/Await/Suspend
// and the drains hand the baton across task goroutines. See checkOwner and
// switchTo.
type Runtime struct {
	id uint64

	// ownerGoroutineID identifies whichever goroutine currently holds this
	// Runtime's baton. Stamped by claimBaton immediately after every
	// baton hand-off is received, so owner-only calls can be rejected
	// from any other goroutine.
	ownerGoroutineID atomic.Uint64

	// currentTask and readyQ are owner-goroutine-only except readyQ,
	// which is additionally guarded by qMutex for the benefit of Wake
	// (callable from any goroutine).
	currentTask *Task
	sentinel    *Task

	readyQ *Task // tail pointer; readyQ.nextReady is the head
	qMutex sync.Mutex
	qCond  *sync.Cond

	external externalSource

	registry *taskRegistry
	metrics  Metrics
	opts     *runtimeOptions

	closed atomic.Bool
}

// NewRuntime creates a Runtime owned by the calling goroutine. Every
// subsequent owner-only call ([Runtime.Call], [Runtime.CallClosure],
// [Runtime.Await], [Runtime.Suspend], [Runtime.CurrentTask], the
// attach/detach methods) must be made from whichever goroutine currently
// holds this Runtime's baton, beginning with the goroutine that calls
// NewRuntime itself.
func NewRuntime(opts ...RuntimeOption) (*Runtime, error) {
	cfg, err := resolveRuntimeOptions(opts)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		id:       runtimeIDCounter.Add(1),
		registry: newTaskRegistry(),
		opts:     cfg,
	}
	rt.qCond = sync.NewCond(&rt.qMutex)
	rt.metrics.enabled.Store(cfg.metricsEnabled)
	rt.ownerGoroutineID.Store(getGoroutineID())

	rt.sentinel = &Task{
		owner:  rt,
		resume: make(chan struct{}, 1),
	}
	rt.sentinel.id = rt.registry.register(rt.sentinel)
	rt.currentTask = rt.sentinel

	return rt, nil
}

// logger returns the effective Logger for this Runtime: the one set via
// WithLogger, or the package-level logger otherwise.
func (rt *Runtime) logger() Logger {
	if rt.opts != nil && rt.opts.logger != nil {
		return rt.opts.logger
	}
	return getGlobalLogger()
}

// Metrics returns a snapshot of this Runtime's cumulative scheduling
// counters. Meaningful only if the Runtime was constructed with
// WithMetrics(true); otherwise every field is zero.
func (rt *Runtime) Metrics() MetricsSnapshot { return rt.metrics.Snapshot() }

// checkOwner panics with ErrNotOwner unless the calling goroutine
// currently holds this Runtime's baton.
func (rt *Runtime) checkOwner() {
	if getGoroutineID() != rt.ownerGoroutineID.Load() {
		panic(ErrNotOwner)
	}
}

// claimBaton stamps the calling goroutine as this Runtime's current
// owner. Called exactly once by every goroutine immediately after it
// unblocks from receiving on its own resume channel (the spawn
// trampoline's first receive, and the receive half of every switchTo).
func (rt *Runtime) claimBaton() {
	rt.ownerGoroutineID.Store(getGoroutineID())
}

// CurrentTask returns the task currently holding this Runtime's baton —
// the sentinel root task if called at top level, outside any Call.
// Owner-only.
func (rt *Runtime) CurrentTask() *Task {
	rt.checkOwner()
	return rt.currentTask
}

// Close marks rt closed and detaches any external source. Subsequent calls
// to Call/CallClosure/CallClosureRetained panic with ErrRuntimeClosed;
// Await on tasks spawned before Close still completes normally. Owner-only.
// Close is idempotent.
func (rt *Runtime) Close() error {
	rt.checkOwner()
	if rt.closed.Swap(true) {
		return nil
	}
	rt.Detach()
	return nil
}

// getGoroutineID returns the calling goroutine's numeric ID, parsed from
// its stack trace header. Same technique as the teacher's event loop
// isLoopThread check, repurposed here for a moving owner-affinity check
// rather than a single fixed loop goroutine.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] >= '0' && buf[i] <= '9' {
			id = id*10 + uint64(buf[i]-'0')
		} else {
			break
		}
	}
	return id
}
