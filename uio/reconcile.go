package uio

import (
	"errors"
	"slices"

	"github.com/delaneyj/uiobserver/identity"
)

// Reconcile maps the declaration next onto the previously reconciled tree
// prev and returns the new tree: an Instance, or a plain value when next is
// not a computation.
//
// Dependencies are reconciled first. When the function and every reconciled
// dependency are identical to prev's, prev is returned untouched. Otherwise
// the Instance for the new structural key is interned and referenced, and
// prev is unreferenced. Anything prev held that the new tree no longer uses
// is released.
//
// Lookup and subscription failures do not abort the pass: the tree is always
// completed so reference counts stay balanced, and the failures are returned
// joined.
func (p *Pool) Reconcile(next, prev any, o *Observer) (any, error) {
	prevInst, _ := prev.(*Instance)
	node, ok := next.(*Node)
	if !ok || node.kind == KindContextLookup {
		err := p.Release(prevInst, o)
		if !ok {
			return next, err
		}
		v, lerr := node.fn.lookup(o.ambientOrNil(), node.deps...)
		if lerr != nil {
			return nil, errors.Join(err, &ComputeError{Key: "context:" + node.fn.name, Err: lerr})
		}
		return v, err
	}

	var errs []error
	var deps []any
	for n, dep := range node.deps {
		var prevDep any
		if prevInst != nil && n < len(prevInst.deps) {
			prevDep = prevInst.deps[n]
		}
		d, err := p.Reconcile(dep, prevDep, o)
		if err != nil {
			errs = append(errs, err)
		}
		if deps == nil {
			if prevInst != nil && n < len(prevInst.deps) && identity.Same(d, prevInst.deps[n]) {
				continue
			}
			deps = make([]any, len(node.deps))
			copy(deps, prevInst.depsUpTo(n))
		}
		deps[n] = d
	}

	// dependencies the new declaration dropped
	if prevInst != nil {
		for _, dep := range prevInst.deps[min(len(node.deps), len(prevInst.deps)):] {
			if err := p.Release(dep, o); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if prevInst != nil && deps == nil && prevInst.fn == node.fn && len(prevInst.deps) == len(node.deps) {
		return prevInst, errors.Join(errs...)
	}
	if deps == nil && len(node.deps) > 0 {
		deps = slices.Clone(prevInst.deps[:len(node.deps)])
	}

	inst := p.Intern(node.fn, deps, node.kind)
	if err := inst.Ref(o); err != nil {
		errs = append(errs, err)
	}
	if prevInst != nil {
		if err := prevInst.Unref(o); err != nil {
			errs = append(errs, err)
		}
	}
	return inst, errors.Join(errs...)
}

// Release reconciles prev against nothing, dropping every reference the tree
// holds.
func (p *Pool) Release(prev any, o *Observer) error {
	inst, ok := prev.(*Instance)
	if !ok || inst == nil {
		return nil
	}
	var errs []error
	for _, dep := range inst.deps {
		if err := p.Release(dep, o); err != nil {
			errs = append(errs, err)
		}
	}
	if err := inst.Unref(o); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (i *Instance) depsUpTo(n int) []any {
	if i == nil {
		return nil
	}
	return i.deps[:n]
}
