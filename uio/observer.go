package uio

import (
	"errors"
	"io"

	"github.com/delaneyj/uiobserver/identity"
)

type OnErrorFunc func(o *Observer, err error)

// Observer binds one root declaration to an Ambient and a change callback.
// It owns every reference its reconciled tree holds until Dispose.
type Observer struct {
	system   *System
	root     any
	ambient  Ambient
	value    any
	pending  bool
	disposed bool

	onChange func(value any)
	onError  OnErrorFunc
	debug    io.Writer
}

type ObserverOption func(*Observer)

// WithOnChange is called with the new value whenever it changes identity,
// including once on attach.
func WithOnChange(fn func(value any)) ObserverOption {
	return func(o *Observer) {
		o.onChange = fn
	}
}

func WithAmbient(ambient Ambient) ObserverOption {
	return func(o *Observer) {
		o.ambient = ambient
	}
}

// WithOnError receives failures from scheduled resolutions, which have no
// caller to return to.
func WithOnError(fn OnErrorFunc) ObserverOption {
	return func(o *Observer) {
		o.onError = fn
	}
}

// WithDebug prints the reachable Instances to w whenever the value changes.
func WithDebug(w io.Writer) ObserverOption {
	return func(o *Observer) {
		o.debug = w
	}
}

func (o *Observer) Value() any {
	return o.value
}

// Root is the reconciled tree: an Instance or a plain value.
func (o *Observer) Root() any {
	return o.root
}

func (o *Observer) Ambient() Ambient {
	return o.ambient
}

func (o *Observer) Disposed() bool {
	return o.disposed
}

func (o *Observer) attach(root any) error {
	tree, err := o.system.pool.Reconcile(root, nil, o)
	o.root = tree
	v, rerr := resolve(tree)
	if rerr != nil {
		return errors.Join(err, rerr)
	}
	o.value = v
	o.printDebug()
	o.notify()
	return err
}

// Update replaces the root declaration. onChange runs only when the new
// value is not identical to the current one.
func (o *Observer) Update(root any) error {
	if o.disposed {
		return ErrDisposed
	}
	tree, err := o.system.pool.Reconcile(root, o.root, o)
	o.root = tree
	v, rerr := resolve(tree)
	if rerr != nil {
		return errors.Join(err, rerr)
	}
	if identity.Same(v, o.value) {
		return err
	}
	o.value = v
	o.printDebug()
	o.notify()
	return err
}

// Invalidate schedules a resolution in the next measure phase. Calls made
// while one is pending are coalesced.
func (o *Observer) Invalidate() {
	if o.disposed || o.pending {
		return
	}
	o.pending = true
	o.system.scheduler.Measure(o.measure)
}

func (o *Observer) measure() {
	if o.disposed {
		return
	}
	o.pending = false
	v, err := resolve(o.root)
	if err != nil {
		o.fail(err)
		return
	}
	if identity.Same(v, o.value) {
		return
	}
	o.value = v
	o.printDebug()
	o.system.scheduler.Mutate(o.notify)
}

func (o *Observer) notify() {
	if o.disposed || o.onChange == nil {
		return
	}
	o.system.pool.recorder.ObserverNotified()
	o.onChange(o.value)
}

func (o *Observer) fail(err error) {
	if o.onError != nil {
		o.onError(o, err)
		return
	}
	o.system.logger.Error("observer resolve failed", "err", err)
}

// Dispose releases the tree. Scheduled phases for this Observer become
// no-ops. Calling Dispose again does nothing.
func (o *Observer) Dispose() error {
	if o.disposed {
		return nil
	}
	o.disposed = true
	o.onChange = nil
	err := o.system.pool.Release(o.root, o)
	o.root = nil
	o.system.observers.Remove(o)
	return err
}

func (o *Observer) ambientOrNil() Ambient {
	if o == nil {
		return nil
	}
	return o.ambient
}
