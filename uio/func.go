package uio

import "fmt"

type Kind uint8

const (
	KindComputed Kind = iota
	KindEventSource
	KindContextLookup
)

func (k Kind) String() string {
	switch k {
	case KindComputed:
		return "computed"
	case KindEventSource:
		return "event-source"
	case KindContextLookup:
		return "context-lookup"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Ambient is the context an embedding layer hands to an Observer, such as
// the root element a component is mounted on. Only context lookups read it.
type Ambient map[string]any

// Unsubscribe tears down an event source subscription.
type Unsubscribe func() error

type ComputeFunc func(args ...any) (any, error)

// SourceFunc subscribes to an external source. It must call invalidate every
// time the source changes and may return nil when there is nothing to tear
// down.
type SourceFunc func(invalidate func(), args ...any) (Unsubscribe, error)

type LookupFunc func(ambient Ambient, args ...any) (any, error)

// Func is the identity of a user function. Go func values cannot be compared,
// so the pointer to a Func stands in for the function: declare Funcs once,
// usually at package level, and reuse them in every declaration.
type Func struct {
	name    string
	compute ComputeFunc
	source  SourceFunc
	lookup  LookupFunc
}

func NewFunc(name string, fn ComputeFunc) *Func {
	return &Func{name: name, compute: fn}
}

func NewSource(name string, fn SourceFunc) *Func {
	return &Func{name: name, source: fn}
}

func NewLookup(name string, fn LookupFunc) *Func {
	return &Func{name: name, lookup: fn}
}

func (f *Func) Name() string {
	return f.name
}

func (f *Func) String() string {
	return "Func(" + f.name + ")"
}

// arg converts a resolved argument, mapping nil to the zero value of T.
func arg[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
