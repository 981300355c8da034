package frame

// Driver runs a callback at the start of the next frame.
type Driver interface {
	RequestFrame(fn func())
}

// Scheduler batches work into frames. Each frame runs every queued measure
// task and then every queued mutate task, so layout reads never interleave
// with writes.
//
// Measures queued while measuring, and mutates queued at any point of the
// frame, run in the same frame. Measures queued while mutating wait for the
// next frame.
//
// A Scheduler belongs to the goroutine that drives its frames.
type Scheduler struct {
	driver    Driver
	reads     []func()
	writes    []func()
	scheduled bool
	frames    uint64
}

func NewScheduler(driver Driver) *Scheduler {
	return &Scheduler{driver: driver}
}

// Measure queues a read-only task.
func (s *Scheduler) Measure(fn func()) {
	s.reads = append(s.reads, fn)
	s.schedule()
}

// Mutate queues a task that may write.
func (s *Scheduler) Mutate(fn func()) {
	s.writes = append(s.writes, fn)
	s.schedule()
}

// Pending returns the number of queued measure and mutate tasks.
func (s *Scheduler) Pending() (reads, writes int) {
	return len(s.reads), len(s.writes)
}

// Frames is the number of frames run so far.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

func (s *Scheduler) schedule() {
	if s.scheduled {
		return
	}
	s.scheduled = true
	s.driver.RequestFrame(s.flush)
}

func (s *Scheduler) flush() {
	s.frames++
	defer func() {
		s.scheduled = false
		if len(s.reads) > 0 || len(s.writes) > 0 {
			s.schedule()
		}
	}()

	for len(s.reads) > 0 {
		fn := s.reads[0]
		s.reads[0] = nil
		s.reads = s.reads[1:]
		fn()
	}

	// measures queued from here on belong to the next frame
	for len(s.writes) > 0 {
		fn := s.writes[0]
		s.writes[0] = nil
		s.writes = s.writes[1:]
		fn()
	}
}
