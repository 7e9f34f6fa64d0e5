package corotask

import (
	"runtime"
	"testing"
)

// TestRegistryLookupFindsLiveTask verifies that a task registered via Call
// can be found again by ID through Lookup.
func TestRegistryLookupFindsLiveTask(t *testing.T) {
	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	task := rt.Call(0, func() int64 {
		rt.Suspend()
		return 0
	})

	got := rt.registry.Lookup(task.ID())
	if got != task {
		t.Fatalf("Lookup(%d) = %p, want %p", task.ID(), got, task)
	}

	task.Wake()
	rt.Await(task)
}

// TestRegistryLookupMissReturnsNil verifies Lookup returns nil for an ID
// that was never registered.
func TestRegistryLookupMissReturnsNil(t *testing.T) {
	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	if got := rt.registry.Lookup(999999); got != nil {
		t.Fatalf("Lookup on unknown ID = %v, want nil", got)
	}
}

// TestRegistryScavengeDropsReapedTasks verifies that Scavenge eventually
// evicts a reaped task's entry from the registry.
func TestRegistryScavengeDropsReapedTasks(t *testing.T) {
	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	task := rt.Call(0, func() int64 { return 1 })
	id := task.ID()
	rt.Await(task)

	if task.stateUnsynchronized() != StateReaped {
		t.Fatalf("task state = %v, want StateReaped", task.stateUnsynchronized())
	}

	// Drive enough scavenge cycles to guarantee the ring wraps at least
	// once, regardless of its current length.
	for i := 0; i < 300; i++ {
		rt.registry.Scavenge(8)
	}

	rt.registry.mu.RLock()
	_, stillPresent := rt.registry.data[id]
	rt.registry.mu.RUnlock()

	if stillPresent {
		t.Fatal("reaped task's registry entry should have been scavenged")
	}

	runtime.KeepAlive(task)
}
