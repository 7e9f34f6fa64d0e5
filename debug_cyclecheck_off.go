//go:build !corotask_debug

package corotask

// debugCycleCheck is a no-op in normal builds; see debug_cyclecheck.go for
// the corotask_debug-tagged implementation.
func debugCycleCheck(t *Task) {}
