package uio

import "github.com/delaneyj/uiobserver/identity"

// Instance is the pooled realization of a Node. There is at most one live
// Instance per structural key; it lives while at least one position in some
// Observer's tree references it.
type Instance struct {
	pool *Pool
	key  string
	fn   *Func
	kind Kind
	deps []any
	refs int

	// value is valid while every resolved dep is identical to args.
	value    any
	args     []any
	computed bool

	// event sources only
	observers   []*Observer
	unsubscribe Unsubscribe
	count       uint64
}

func (i *Instance) Key() string {
	return i.key
}

func (i *Instance) Func() *Func {
	return i.fn
}

func (i *Instance) Kind() Kind {
	return i.kind
}

// Deps returns the reconciled dependencies, Instances or plain values. The
// slice must not be modified.
func (i *Instance) Deps() []any {
	return i.deps
}

func (i *Instance) Refs() int {
	return i.refs
}

// Value is the last computed value without resolving.
func (i *Instance) Value() any {
	return i.value
}

func (i *Instance) Name() string {
	return "Instance:" + i.fn.name
}

// Resolve returns the current value, calling the function only when a
// dependency resolved to something not identical to last time. On failure
// the previous value and arguments are kept.
func (i *Instance) Resolve() (any, error) {
	if i.kind == KindEventSource {
		return i.value, nil
	}

	var args []any
	for n, dep := range i.deps {
		v, err := resolve(dep)
		if err != nil {
			return nil, err
		}
		if args == nil {
			if i.computed && identity.Same(v, i.args[n]) {
				continue
			}
			args = make([]any, len(i.deps))
			copy(args, i.args[:n])
		}
		args[n] = v
	}

	if args == nil && i.computed {
		i.pool.recorder.InstanceResolved(false)
		return i.value, nil
	}

	v, err := i.fn.compute(args...)
	if err != nil {
		return nil, &ComputeError{Key: i.key, Err: err}
	}
	i.args, i.value, i.computed = args, v, true
	i.pool.recorder.InstanceResolved(true)
	return v, nil
}

// Ref adds a reference from a position in o's tree. The first reference to
// an event source subscribes it.
func (i *Instance) Ref(o *Observer) error {
	i.refs++
	if i.kind != KindEventSource {
		return nil
	}
	if o != nil {
		i.observers = append(i.observers, o)
	}
	if i.refs != 1 {
		return nil
	}

	args := make([]any, len(i.deps))
	for n, dep := range i.deps {
		v, err := resolve(dep)
		if err != nil {
			return &SubscriptionError{Key: i.key, Op: "subscribe", Err: err}
		}
		args[n] = v
	}
	unsubscribe, err := i.fn.source(i.invalidate, args...)
	if err != nil {
		return &SubscriptionError{Key: i.key, Op: "subscribe", Err: err}
	}
	i.unsubscribe = unsubscribe
	i.pool.logger.Debug("subscribed", "key", i.key)
	return nil
}

// Unref drops a reference. The last one removes the Instance from the pool
// and tears down its subscription. Unref never takes refs below zero.
func (i *Instance) Unref(o *Observer) error {
	if i.refs == 0 {
		return nil
	}
	i.refs--
	if i.kind == KindEventSource && o != nil {
		for n, target := range i.observers {
			if target == o {
				i.observers = append(i.observers[:n], i.observers[n+1:]...)
				break
			}
		}
	}
	if i.refs > 0 {
		return nil
	}

	i.pool.remove(i)
	if i.unsubscribe == nil {
		return nil
	}
	unsubscribe := i.unsubscribe
	i.unsubscribe = nil
	i.observers = nil
	i.pool.logger.Debug("unsubscribed", "key", i.key)
	if err := unsubscribe(); err != nil {
		return &SubscriptionError{Key: i.key, Op: "unsubscribe", Err: err}
	}
	return nil
}

// invalidate is handed to the source as its change callback.
func (i *Instance) invalidate() {
	if i.refs == 0 {
		return
	}
	i.count++
	i.value = i.count
	for _, o := range i.observers {
		o.Invalidate()
	}
}

func resolve(dep any) (any, error) {
	if inst, ok := dep.(*Instance); ok {
		return inst.Resolve()
	}
	return dep, nil
}
