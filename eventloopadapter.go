package corotask

import "github.com/joeycumines/go-eventloop"

// eventLoopSource adapts a Runtime onto a github.com/joeycumines/go-eventloop
// *eventloop.Loop, implementing externalSource by submitting an internal
// drain-until-empty closure on every wake — the Go-native analogue of
// the source's CFRunLoopSourceSignal + CFRunLoopWakeUp pair.
type eventLoopSource struct {
	loop *eventloop.Loop
}

func (s *eventLoopSource) notify(rt *Runtime) {
	// SubmitInternal runs the closure on the loop's own goroutine,
	// waking the loop first if it is asleep — exactly spec §4.5's
	// "signal the source and wake the loop" for the event-loop case.
	_ = s.loop.SubmitInternal(func() {
		for rt.runNext() {
		}
	})
}

func (s *eventLoopSource) detach(rt *Runtime) {}

func (s *eventLoopSource) kind() string { return "eventloop" }

// AttachEventLoop attaches an external go-eventloop Loop as this Runtime's
// event source, per spec §6's attach-event-loop: detaches any prior
// source, then installs a source whose callback drains via runNext until
// the ready queue is empty, exactly as spec §4.6 prescribes for the
// event-loop case. Owner-only.
func (rt *Runtime) AttachEventLoop(loop *eventloop.Loop) error {
	rt.checkOwner()
	rt.Detach()
	rt.external = &eventLoopSource{loop: loop}
	logExternalAttached(rt, "eventloop")
	return nil
}
