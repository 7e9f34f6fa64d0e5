//go:build corotask_debug

package corotask

import "fmt"

// debugCycleCheck walks t's caller chain looking for a repeated task,
// which would mean the acyclic-caller-chain invariant (spec §3's
// invariant 3, "caller forms an acyclic chain rooted at the sentinel")
// has been violated by a re-entry bug. Only built with the
// corotask_debug tag, since it is O(call depth) on every Call; see
// callSpawn.
func debugCycleCheck(t *Task) {
	seen := make(map[*Task]bool, 8)
	for cur := t; cur != nil; cur = cur.caller {
		if seen[cur] {
			panic(fmt.Sprintf("corotask: cyclic caller chain detected at task %d", cur.id))
		}
		seen[cur] = true
	}
}
