package corotask

// readyqueue.go implements the circular intrusive ready queue described in
// spec §3/§9: Runtime.readyQ is the tail pointer, so readyQ.nextReady is
// the head, giving O(1) enqueue-at-tail and O(1) dequeue-at-head. A task's
// nextReady field is non-nil if and only if it is currently enqueued —
// that invariant is what makes Wake's "already enqueued" coalescing check
// a simple nil test.

// enqueueReadyLocked inserts t at the tail of rt's ready queue unless it is
// already enqueued. Must be called with rt.qMutex held. Returns true if t
// was already enqueued (the wake coalesced into a no-op).
func (rt *Runtime) enqueueReadyLocked(t *Task) bool {
	if t.nextReady != nil {
		return true
	}
	if rt.readyQ == nil {
		t.nextReady = t
	} else {
		t.nextReady = rt.readyQ.nextReady
		rt.readyQ.nextReady = t
	}
	rt.readyQ = t
	return false
}

// popReadyLocked removes and returns the head of rt's ready queue, or nil
// if it is empty. Must be called with rt.qMutex held.
func (rt *Runtime) popReadyLocked() *Task {
	tail := rt.readyQ
	if tail == nil {
		return nil
	}
	head := tail.nextReady
	if head == tail {
		rt.readyQ = nil
	} else {
		tail.nextReady = head.nextReady
	}
	head.nextReady = nil
	return head
}
