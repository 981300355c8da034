package frame

// Manual is a Driver whose frames only run when Flush is called. It stands in
// for requestAnimationFrame in tests and in hosts that own their render loop.
type Manual struct {
	pending []func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) RequestFrame(fn func()) {
	m.pending = append(m.pending, fn)
}

// Pending is the number of frame callbacks waiting for Flush.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Flush runs one frame: every callback requested before the call. Callbacks
// requested while flushing wait for the next Flush.
func (m *Manual) Flush() int {
	pending := m.pending
	m.pending = nil
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
