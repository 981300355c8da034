package uio

import (
	"errors"
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
)

// Scheduler runs resolutions in a measure phase and notifications in the
// following mutate phase. frame.Scheduler implements it.
type Scheduler interface {
	Measure(fn func())
	Mutate(fn func())
}

// System ties a Pool to the Scheduler that drives its Observers. Everything
// attached to a System must be used from the goroutine that drives its
// scheduler.
type System struct {
	pool      *Pool
	scheduler Scheduler
	logger    *slog.Logger
	observers mapset.Set[*Observer]
}

type SystemOption func(*System)

func WithPool(p *Pool) SystemOption {
	return func(s *System) {
		s.pool = p
	}
}

// WithLogger sets the logger used for unhandled errors, and for pool
// activity when the pool is created by the System.
func WithLogger(l *slog.Logger) SystemOption {
	return func(s *System) {
		s.logger = l
	}
}

func NewSystem(scheduler Scheduler, opts ...SystemOption) *System {
	s := &System{
		scheduler: scheduler,
		logger:    slog.Default(),
		observers: mapset.NewThreadUnsafeSet[*Observer](),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pool == nil {
		s.pool = NewPool(WithPoolLogger(s.logger))
	}
	return s
}

func (s *System) Pool() *Pool {
	return s.pool
}

// Observe attaches root: it is reconciled, resolved and reported to
// onChange. The Observer is returned even when attaching fails so it can be
// disposed.
func (s *System) Observe(root any, opts ...ObserverOption) (*Observer, error) {
	o := &Observer{
		system:  s,
		ambient: Ambient{},
	}
	for _, opt := range opts {
		opt(o)
	}
	s.observers.Add(o)
	return o, o.attach(root)
}

// Observers is the number of live Observers.
func (s *System) Observers() int {
	return s.observers.Cardinality()
}

// DisposeAll disposes every live Observer.
func (s *System) DisposeAll() error {
	var errs []error
	for _, o := range s.observers.ToSlice() {
		if err := o.Dispose(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
