package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeParams is the argument type parameter list with a trailing separator,
// so the result type can follow it.
func typeParams(count int) string {
	if count == 0 {
		return ""
	}
	return prefixedStrings("A", count) + ", "
}

func callArgs(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := strconv.Itoa(i)
		sb.WriteString("arg[A" + n + "](args[" + n + "])")
	}
	return sb.String()
}
