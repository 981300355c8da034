package uio

// Recorder observes graph activity, for metrics.
type Recorder interface {
	InstanceInterned(kind Kind, reused bool)
	InstanceReleased(kind Kind)
	InstanceResolved(recomputed bool)
	ObserverNotified()
}

type NopRecorder struct{}

func (NopRecorder) InstanceInterned(Kind, bool) {}
func (NopRecorder) InstanceReleased(Kind)       {}
func (NopRecorder) InstanceResolved(bool)       {}
func (NopRecorder) ObserverNotified()           {}
