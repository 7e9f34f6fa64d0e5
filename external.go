package corotask

// externalSource abstracts the "attached loop" state from spec §3/§6: at
// most one of {none, event-loop, work-queue} is active on a Runtime at any
// instant, enforced by every Attach* method calling Detach first.
type externalSource interface {
	// notify is called with rt's queue mutex not held, once per Wake,
	// after the wake has already been enqueued.
	notify(rt *Runtime)
	// detach releases any resources the source holds. Called with the
	// source about to be discarded; rt.external still points at it.
	detach(rt *Runtime)
	kind() string
}

// notify dispatches a wake notification per spec §4.5's table: to the
// attached work queue or event loop if one is attached, or to the ready
// queue's condition variable otherwise.
func (rt *Runtime) notify() {
	if rt.external != nil {
		rt.external.notify(rt)
		return
	}
	rt.qMutex.Lock()
	rt.qCond.Signal()
	rt.qMutex.Unlock()
}

// Detach releases any attached event loop or work queue; the Runtime
// falls back to condition-variable signalling for subsequent wakes.
// Owner-only. A no-op if nothing is attached.
func (rt *Runtime) Detach() {
	rt.checkOwner()
	if rt.external == nil {
		return
	}
	rt.external.detach(rt)
	rt.external = nil
	logExternalDetached(rt)
}
