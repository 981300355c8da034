package identity

import (
	"reflect"
	"strconv"
	"strings"
)

// Named is implemented by values that want a readable label in debug tokens.
type Named interface {
	Name() string
}

// addr identifies a live reference value without keeping it alive. The type
// is part of the identity so a pointer to a struct and a pointer to its first
// field do not share a token.
type addr struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type entry struct {
	token   string
	holders int
}

// Registry hands out identity tokens.
//
// Reference values (pointers, maps, channels, slices, funcs) get a token
// minted the first time they are seen. The table is keyed by address only, so
// it never pins a value; entries are pruned once every holder has released
// them. Primitive values get a token computed purely from their type and
// content, so "5" and 5 never collide.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	next    uint64
	entries map[addr]*entry
	names   bool

	// types named inside functions share their package path and name with
	// other types of that name; later ones get a numbered suffix
	types     map[reflect.Type]string
	typeNames map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{
		entries:   map[addr]*entry{},
		types:     map[reflect.Type]string{},
		typeNames: map[string]bool{},
	}
}

// DebugNames makes newly minted reference tokens carry a readable label.
func (r *Registry) DebugNames(enabled bool) {
	r.names = enabled
}

// Len is the number of reference values currently tracked.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Token returns the identity token of v.
func (r *Registry) Token(v any) string {
	if v == nil {
		return "nil"
	}
	return r.token(reflect.ValueOf(v))
}

func (r *Registry) token(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Invalid:
		return "nil"
	case reflect.Bool:
		return r.typeName(rv.Type()) + ":" + strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return r.typeName(rv.Type()) + ":" + strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return r.typeName(rv.Type()) + ":" + strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return r.typeName(rv.Type()) + ":" + strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		return r.typeName(rv.Type()) + ":" + strconv.FormatComplex(rv.Complex(), 'g', -1, rv.Type().Bits())
	case reflect.String:
		return r.typeName(rv.Type()) + ":" + strconv.Quote(rv.String())
	case reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		return r.token(rv.Elem())
	case reflect.Struct:
		if !rv.Type().Comparable() {
			return r.opaque()
		}
		var sb strings.Builder
		sb.WriteString(r.typeName(rv.Type()))
		sb.WriteByte('{')
		for i := 0; i < rv.NumField(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(r.token(rv.Field(i)))
		}
		sb.WriteByte('}')
		return sb.String()
	case reflect.Array:
		if !rv.Type().Comparable() {
			return r.opaque()
		}
		var sb strings.Builder
		sb.WriteString(r.typeName(rv.Type()))
		sb.WriteByte('{')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(r.token(rv.Index(i)))
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		return r.reference(rv)
	}
}

// reference mints or looks up the token of a reference value. Typed nils
// compare equal in Go, so they get a content token instead of an entry.
func (r *Registry) reference(rv reflect.Value) string {
	a, ok := addrOf(rv)
	if !ok {
		return r.typeName(rv.Type()) + ":nil"
	}
	if e, ok := r.entries[a]; ok {
		return e.token
	}

	r.next++
	token := "#" + strconv.FormatUint(r.next, 10)
	if r.names {
		token += ":" + strconv.Quote(friendlyName(rv))
	}
	r.entries[a] = &entry{token: token}
	return token
}

// opaque tokens are never equal to anything, including each other.
func (r *Registry) opaque() string {
	r.next++
	return "~" + strconv.FormatUint(r.next, 10)
}

// Retain marks every reference value reachable from v as held.
func (r *Registry) Retain(v any) {
	if v == nil {
		return
	}
	r.walk(reflect.ValueOf(v), func(a addr, rv reflect.Value) {
		e, ok := r.entries[a]
		if !ok {
			r.reference(rv)
			e = r.entries[a]
		}
		e.holders++
	})
}

// Release drops one hold on every reference value reachable from v and prunes
// entries nobody holds any more.
func (r *Registry) Release(v any) {
	if v == nil {
		return
	}
	r.walk(reflect.ValueOf(v), func(a addr, _ reflect.Value) {
		e, ok := r.entries[a]
		if !ok {
			return
		}
		e.holders--
		if e.holders <= 0 {
			delete(r.entries, a)
		}
	})
}

func (r *Registry) walk(rv reflect.Value, fn func(addr, reflect.Value)) {
	switch rv.Kind() {
	case reflect.Interface:
		if !rv.IsNil() {
			r.walk(rv.Elem(), fn)
		}
	case reflect.Struct:
		if rv.Type().Comparable() {
			for i := 0; i < rv.NumField(); i++ {
				r.walk(rv.Field(i), fn)
			}
		}
	case reflect.Array:
		if rv.Type().Comparable() {
			for i := 0; i < rv.Len(); i++ {
				r.walk(rv.Index(i), fn)
			}
		}
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		if a, ok := addrOf(rv); ok {
			fn(a, rv)
		}
	}
}

func addrOf(rv reflect.Value) (addr, bool) {
	a := addr{typ: rv.Type()}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return a, false
		}
		a.ptr, a.len = rv.Pointer(), rv.Len()
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return a, false
		}
		a.ptr = rv.Pointer()
	default:
		return a, false
	}
	return a, true
}

func friendlyName(rv reflect.Value) string {
	if rv.CanInterface() {
		if n, ok := rv.Interface().(Named); ok {
			if name := n.Name(); name != "" {
				return name
			}
		}
	}
	return rv.Type().String()
}

// typeName is unique per reflect.Type for the life of the registry.
func (r *Registry) typeName(t reflect.Type) string {
	if name, ok := r.types[t]; ok {
		return name
	}
	base := t.String()
	if t.PkgPath() != "" && t.Name() != "" {
		base = t.PkgPath() + "." + t.Name()
	}
	name := base
	for n := 1; r.typeNames[name]; n++ {
		name = base + "'" + strconv.Itoa(n)
	}
	r.typeNames[name] = true
	r.types[t] = name
	return name
}
