package uio

import (
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/uiobserver/identity"
)

// Pool interns Instances by structural key. Every System owns one; tests
// that need isolation create their own.
type Pool struct {
	registry *identity.Registry
	recorder Recorder
	logger   *slog.Logger

	// keys are bucketed by hash; the full key is compared on lookup
	buckets map[uint64][]*Instance
	size    int

	debugNames bool
}

type PoolOption func(*Pool)

func WithRegistry(r *identity.Registry) PoolOption {
	return func(p *Pool) {
		p.registry = r
	}
}

func WithRecorder(r Recorder) PoolOption {
	return func(p *Pool) {
		p.recorder = r
	}
}

func WithPoolLogger(l *slog.Logger) PoolOption {
	return func(p *Pool) {
		p.logger = l
	}
}

// WithDebugNames labels structural keys with function names.
func WithDebugNames(enabled bool) PoolOption {
	return func(p *Pool) {
		p.debugNames = enabled
	}
}

func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		registry: identity.NewRegistry(),
		recorder: NopRecorder{},
		logger:   slog.Default(),
		buckets:  map[uint64][]*Instance{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.debugNames {
		p.registry.DebugNames(true)
	}
	return p
}

func (p *Pool) Registry() *identity.Registry {
	return p.registry
}

// Len is the number of live Instances.
func (p *Pool) Len() int {
	return p.size
}

func (p *Pool) Lookup(key string) (*Instance, bool) {
	for _, inst := range p.buckets[xxhash.Sum64String(key)] {
		if inst.key == key {
			return inst, true
		}
	}
	return nil, false
}

// Intern returns the Instance for (fn, deps), creating it when none is live.
// The caller is expected to Ref the result.
func (p *Pool) Intern(fn *Func, deps []any, kind Kind) *Instance {
	key := identity.Key(p.registry, fn, deps)
	h := xxhash.Sum64String(key)
	for _, inst := range p.buckets[h] {
		if inst.key == key {
			p.recorder.InstanceInterned(kind, true)
			return inst
		}
	}

	inst := &Instance{
		pool: p,
		key:  key,
		fn:   fn,
		kind: kind,
		deps: deps,
	}
	if kind == KindEventSource {
		inst.value = inst.count
	}
	p.buckets[h] = append(p.buckets[h], inst)
	p.size++

	p.registry.Retain(fn)
	for _, dep := range deps {
		p.registry.Retain(dep)
	}
	p.recorder.InstanceInterned(kind, false)
	p.logger.Debug("interned", "key", key, "kind", kind)
	return inst
}

func (p *Pool) remove(inst *Instance) {
	h := xxhash.Sum64String(inst.key)
	bucket := p.buckets[h]
	for n, candidate := range bucket {
		if candidate != inst {
			continue
		}
		if len(bucket) == 1 {
			delete(p.buckets, h)
		} else {
			p.buckets[h] = append(bucket[:n], bucket[n+1:]...)
		}
		p.size--

		p.registry.Release(inst.fn)
		for _, dep := range inst.deps {
			p.registry.Release(dep)
		}
		p.recorder.InstanceReleased(inst.kind)
		p.logger.Debug("released", "key", inst.key)
		return
	}
}
