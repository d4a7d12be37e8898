package generator

import (
	"fmt"
	"regexp"
	"strings"
)

// identPattern matches names usable unescaped after # or . and as tag names.
var identPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

func isIdent(s string) bool {
	return identPattern.MatchString(s)
}

// quote renders s as a double-quoted CSS string.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			// Hex escapes end with a space so a following hex digit is not absorbed.
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
