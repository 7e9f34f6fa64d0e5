// metrics.go - Runtime Metrics for corotask
//
// Metrics tracks cumulative counters for a Runtime's scheduling activity:
// calls, awaits, wakes, coalesced wakes, and drain steps. Metrics are
// optional (see WithMetrics) and designed to be low-overhead and safe to
// read concurrently with the owner goroutine's scheduling work.

package corotask

import "sync/atomic"

// Metrics holds cumulative scheduling counters for a Runtime. A zero-value
// Metrics is attached to every Runtime; its values stay at zero if metrics
// collection was not enabled via WithMetrics(true), aside from an initial,
// negligible bookkeeping cost.
//
// Thread Safety: every method is safe to call from any goroutine.
type Metrics struct {
	calls           atomic.Int64
	awaits          atomic.Int64
	wakes           atomic.Int64
	coalescedWakes  atomic.Int64
	drainSteps      atomic.Int64
	tasksSpawned    atomic.Int64
	tasksReaped     atomic.Int64
	entryPanics     atomic.Int64
	enabled         atomic.Bool
}

// MetricsSnapshot is a point-in-time copy of a Runtime's Metrics, safe to
// read and pass around after it is returned.
type MetricsSnapshot struct {
	Calls          int64
	Awaits         int64
	Wakes          int64
	CoalescedWakes int64
	DrainSteps     int64
	TasksSpawned   int64
	TasksReaped    int64
	EntryPanics    int64
}

// Snapshot returns a copy of the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Calls:          m.calls.Load(),
		Awaits:         m.awaits.Load(),
		Wakes:          m.wakes.Load(),
		CoalescedWakes: m.coalescedWakes.Load(),
		DrainSteps:     m.drainSteps.Load(),
		TasksSpawned:   m.tasksSpawned.Load(),
		TasksReaped:    m.tasksReaped.Load(),
		EntryPanics:    m.entryPanics.Load(),
	}
}

func (m *Metrics) recordCall() {
	if m.enabled.Load() {
		m.calls.Add(1)
		m.tasksSpawned.Add(1)
	}
}

func (m *Metrics) recordAwait() {
	if m.enabled.Load() {
		m.awaits.Add(1)
	}
}

func (m *Metrics) recordWake(coalesced bool) {
	if !m.enabled.Load() {
		return
	}
	if coalesced {
		m.coalescedWakes.Add(1)
	} else {
		m.wakes.Add(1)
	}
}

func (m *Metrics) recordDrainStep() {
	if m.enabled.Load() {
		m.drainSteps.Add(1)
	}
}

func (m *Metrics) recordReaped() {
	if m.enabled.Load() {
		m.tasksReaped.Add(1)
	}
}

func (m *Metrics) recordEntryPanic() {
	if m.enabled.Load() {
		m.entryPanics.Add(1)
	}
}
