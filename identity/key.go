package identity

import "strings"

// Key builds the structural key of a computation: the token of fn followed by
// the tokens of deps in order, e.g. `#3(int:2, #7)`. Tokens are self
// delimiting (strings are quoted), so the key is injective over
// (fn, arity, order, dependency identities).
func Key(r *Registry, fn any, deps []any) string {
	var sb strings.Builder
	sb.WriteString(r.Token(fn))
	sb.WriteByte('(')
	for i, dep := range deps {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.Token(dep))
	}
	sb.WriteByte(')')
	return sb.String()
}
