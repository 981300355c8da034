package uio_test

import (
	"testing"

	"github.com/delaneyj/uiobserver/uio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(name string) *uio.Func {
	return uio.NewFunc(name, func(args ...any) (any, error) {
		return nil, nil
	})
}

func reconcile(t *testing.T, p *uio.Pool, next, prev any) *uio.Instance {
	t.Helper()
	tree, err := p.Reconcile(next, prev, nil)
	require.NoError(t, err)
	inst, ok := tree.(*uio.Instance)
	require.True(t, ok, "expected an instance, got %T", tree)
	return inst
}

func TestSingletonByFuncAndDeps(t *testing.T) {
	p := uio.NewPool()
	a, b := noop("a"), noop("b")

	instanceA := reconcile(t, p, uio.Observe(a), nil)
	assert.Same(t, instanceA, reconcile(t, p, uio.Observe(a), nil))
	assert.NotSame(t, instanceA, reconcile(t, p, uio.Observe(a, 5), nil))
	assert.NotSame(t, instanceA, reconcile(t, p, uio.Observe(a, 6), nil))
	assert.NotSame(t, instanceA, reconcile(t, p, uio.Observe(b), nil))
}

func TestInternProperties(t *testing.T) {
	p := uio.NewPool()
	f, g := noop("f"), noop("g")
	x, y := &struct{ n int }{1}, &struct{ n int }{1}

	d1 := []any{x, 2}
	d2 := []any{x, 2}
	d3 := []any{y, 2}

	assert.Same(t, p.Intern(f, d1, uio.KindComputed), p.Intern(f, d2, uio.KindComputed))
	assert.NotSame(t, p.Intern(f, d1, uio.KindComputed), p.Intern(f, d3, uio.KindComputed))
	assert.NotSame(t, p.Intern(f, d1, uio.KindComputed), p.Intern(g, d1, uio.KindComputed))
	assert.NotSame(t, p.Intern(f, []any{5}, uio.KindComputed), p.Intern(f, []any{"5"}, uio.KindComputed))

	inst := p.Intern(f, d1, uio.KindComputed)
	found, ok := p.Lookup(inst.Key())
	require.True(t, ok)
	assert.Same(t, inst, found)
}

func TestReusesSingletonOnUpdate(t *testing.T) {
	p := uio.NewPool()
	a, b := noop("a"), noop("b")

	instanceA := reconcile(t, p, uio.Observe(a), nil)
	assert.Same(t, instanceA, reconcile(t, p, uio.Observe(a), instanceA))
	assert.NotSame(t, instanceA, reconcile(t, p, uio.Observe(b), instanceA))
}

func TestDisposesUnusedSingletons(t *testing.T) {
	p := uio.NewPool()
	a, b := noop("a"), noop("b")

	instanceA := reconcile(t, p, uio.Observe(a), nil)
	inst := reconcile(t, p, uio.Observe(b), instanceA)
	assert.Equal(t, 0, instanceA.Refs())
	_, ok := p.Lookup(instanceA.Key())
	assert.False(t, ok)

	inst = reconcile(t, p, uio.Observe(a), inst)
	assert.NotSame(t, instanceA, inst)
	assert.Equal(t, 1, p.Len())
}

func TestReferenceCounts(t *testing.T) {
	p := uio.NewPool()
	a, f := noop("a"), noop("f")

	// new ref
	instanceA := reconcile(t, p, uio.Observe(a), nil)
	assert.Equal(t, 1, instanceA.Refs())

	// same ref
	reconcile(t, p, uio.Observe(a), instanceA)
	assert.Equal(t, 1, instanceA.Refs())

	// deep ref
	tree := reconcile(t, p, uio.Observe(f, uio.Observe(a), uio.Observe(a)), nil)
	assert.Equal(t, 3, instanceA.Refs())
	tree = reconcile(t, p, uio.Observe(f, uio.Observe(a), uio.Observe(a)), tree)
	assert.Equal(t, 3, instanceA.Refs())

	// tree of refs
	g := noop("g")
	big := reconcile(t, p, uio.Observe(g, uio.Observe(f, uio.Observe(a), uio.Observe(a)), uio.Observe(a)), nil)
	assert.Equal(t, 6, instanceA.Refs())
	big = reconcile(t, p, uio.Observe(g, uio.Observe(f, uio.Observe(a), uio.Observe(a)), uio.Observe(a)), big)
	assert.Equal(t, 6, instanceA.Refs())

	out, err := p.Reconcile(nil, big, nil)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, 3, instanceA.Refs())

	require.NoError(t, p.Release(tree, nil))
	require.NoError(t, p.Release(instanceA, nil))
	assert.Equal(t, 0, instanceA.Refs())
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.Registry().Len())
}

func TestUnrefNeverGoesNegative(t *testing.T) {
	p := uio.NewPool()
	inst := reconcile(t, p, uio.Observe(noop("a")), nil)
	require.NoError(t, inst.Unref(nil))
	require.NoError(t, inst.Unref(nil))
	assert.Equal(t, 0, inst.Refs())
}

func TestDroppedDependenciesAreReleased(t *testing.T) {
	p := uio.NewPool()
	a, b, f := noop("a"), noop("b"), noop("f")

	tree := reconcile(t, p, uio.Observe(f, uio.Observe(a), uio.Observe(b)), nil)
	instanceB := tree.Deps()[1].(*uio.Instance)
	require.Equal(t, 1, instanceB.Refs())

	tree = reconcile(t, p, uio.Observe(f, uio.Observe(a)), tree)
	assert.Equal(t, 0, instanceB.Refs())
	assert.Len(t, tree.Deps(), 1)
	assert.Equal(t, 2, p.Len())
}

func TestChangePropagatesOneLevelAtATime(t *testing.T) {
	p := uio.NewPool()
	f, g := noop("f"), noop("g")

	tree := reconcile(t, p, uio.Observe(g, uio.Observe(f, 1), 10), nil)
	inner := tree.Deps()[0].(*uio.Instance)

	next := reconcile(t, p, uio.Observe(g, uio.Observe(f, 1), 11), tree)
	assert.NotSame(t, tree, next)
	assert.Same(t, inner, next.Deps()[0], "unchanged dependency is reused")
	assert.Equal(t, 1, inner.Refs())
}

func TestPlainValuesAndContextAreNotPooled(t *testing.T) {
	p := uio.NewPool()
	out, err := p.Reconcile(42, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	lookup := uio.NewLookup("lookup", func(ambient uio.Ambient, args ...any) (any, error) {
		return len(args), nil
	})
	out, err = p.Reconcile(uio.Context(lookup, "a", "b"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
	assert.Equal(t, 0, p.Len())
}

func TestReplacingInstanceWithValueReleasesSubtree(t *testing.T) {
	p := uio.NewPool()
	a, f := noop("a"), noop("f")
	tree := reconcile(t, p, uio.Observe(f, uio.Observe(a)), nil)
	require.Equal(t, 2, p.Len())

	out, err := p.Reconcile("plain", tree, nil)
	require.NoError(t, err)
	assert.Equal(t, "plain", out)
	assert.Equal(t, 0, p.Len())
}

func TestInternDistinguishesSameNamedTypes(t *testing.T) {
	p := uio.NewPool()
	f := noop("f")
	first := func() any {
		type id int
		return id(1)
	}()
	second := func() any {
		type id int
		return id(1)
	}()
	assert.NotSame(t, p.Intern(f, []any{first}, uio.KindComputed), p.Intern(f, []any{second}, uio.KindComputed))
}
