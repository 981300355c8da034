package uio

import "slices"

// Node describes one computation: a function, its ordered dependencies and
// its kind. Dependencies are other Nodes or plain values. Nodes are
// immutable and cheap; build new ones on every declaration.
type Node struct {
	fn   *Func
	deps []any
	kind Kind
}

func (n *Node) Func() *Func {
	return n.fn
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Deps returns the declared dependencies. The slice must not be modified.
func (n *Node) Deps() []any {
	return n.deps
}

func newNode(kind Kind, fn *Func, deps []any) *Node {
	return &Node{
		fn:   fn,
		deps: slices.Clone(deps),
		kind: kind,
	}
}

// Observe declares a computed value: fn is called with the resolved deps.
func Observe(fn *Func, deps ...any) *Node {
	return newNode(KindComputed, fn, deps)
}

// Subscribe declares an event source. Its value is a counter that increases
// every time the source invalidates.
func Subscribe(fn *Func, deps ...any) *Node {
	return newNode(KindEventSource, fn, deps)
}

// Context declares a lookup into the Observer's Ambient. It is evaluated on
// every reconciliation and never pooled.
func Context(fn *Func, deps ...any) *Node {
	return newNode(KindContextLookup, fn, deps)
}
