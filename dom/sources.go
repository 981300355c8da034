package dom

import (
	"fmt"

	"github.com/delaneyj/uiobserver/uio"
)

var eventSource = uio.NewSource("event", func(invalidate func(), args ...any) (uio.Unsubscribe, error) {
	w, ok := args[0].(Window)
	if !ok {
		return nil, fmt.Errorf("event source: %T is not a Window", args[0])
	}
	event, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("event source: %T is not an event name", args[1])
	}
	remove := w.AddEventListener(event, invalidate)
	return func() error {
		remove()
		return nil
	}, nil
})

// frameSource invalidates once per frame. Each tick runs in the measure
// phase and requests the next one from the mutate phase, which is the only
// way to land in the next frame's measure phase.
var frameSource = uio.NewSource("frame", func(invalidate func(), args ...any) (uio.Unsubscribe, error) {
	s, ok := args[0].(uio.Scheduler)
	if !ok {
		return nil, fmt.Errorf("frame source: %T is not a scheduler", args[0])
	}

	unsubscribed := false
	var tick func()
	request := func() {
		s.Measure(tick)
	}
	tick = func() {
		if unsubscribed {
			return
		}
		s.Mutate(request)
		invalidate()
	}
	s.Measure(tick)

	return func() error {
		unsubscribed = true
		return nil
	}, nil
})

// ScrollEvent changes every time w scrolls.
func ScrollEvent(w Window) *uio.Node {
	return uio.Subscribe(eventSource, w, "scroll")
}

// ResizeEvent changes every time w is resized.
func ResizeEvent(w Window) *uio.Node {
	return uio.Subscribe(eventSource, w, "resize")
}

// Event changes every time w dispatches event.
func Event(w Window, event string) *uio.Node {
	return uio.Subscribe(eventSource, w, event)
}

// FrameEvent changes once per frame of s while observed.
func FrameEvent(s uio.Scheduler) *uio.Node {
	return uio.Subscribe(frameSource, s)
}
