// Package cleaner normalises selectors before they are executed in a browser.
package cleaner

import "strings"

// textPseudos are parser extensions that browsers reject.
var textPseudos = []string{":contains(", ":containsown("}

// Clean removes every :contains(...) and :containsOwn(...) fragment, drops
// combinators left dangling and empty group members, collapses whitespace outside
// quoted strings and trims. Clean(Clean(s)) == Clean(s).
func Clean(selector string) string {
	out := selector
	for {
		next := stripContains(out)
		if next == out {
			break
		}
		out = next
	}

	parts := splitGroup(out)
	kept := parts[:0]
	for _, part := range parts {
		part = trimCombinators(collapseSpace(part))
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}

// stripContains removes the first-level :contains(...) fragments of s in one pass.
func stripContains(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			} else if c == quote {
				quote = 0
			}
			continue
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte(c)
			continue
		case c == ':':
			if n := textPseudoLen(s[i:]); n > 0 {
				i = skipArgument(s, i+n) - 1
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// skipArgument returns the index just past the parenthesis closing the argument
// that starts at i, or len(s) when it is never closed.
func skipArgument(s string, i int) int {
	depth := 1
	var quote byte
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '\\':
			i++
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(s)
}

func textPseudoLen(s string) int {
	for _, prefix := range textPseudos {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			return len(prefix)
		}
	}
	return 0
}

// splitGroup splits a selector group on commas outside quotes, brackets and parentheses.
func splitGroup(s string) []string {
	var parts []string
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			if depth > 0 {
				depth--
			}
		case c == ',' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// collapseSpace folds whitespace runs outside quoted strings into one space and trims.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var quote byte
	pendingSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote == 0 && isSpace(c) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteByte(c)
		switch {
		case c == '\\' && i+1 < len(s):
			i++
			b.WriteByte(s[i])
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		}
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// trimCombinators drops combinators left with nothing to bind to.
func trimCombinators(s string) string {
	for {
		trimmed := strings.TrimSpace(strings.Trim(s, ">+~"))
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}
