// Package strings holds helpers for string-typed identifiers.
package strings

import (
	"strings"
)

// DedupeTrimmed trims every value and drops blanks and repeats, keeping the
// first occurrence. Works on any string-kinded type such as an ident.
func DedupeTrimmed[T ~string](values []T) []T {
	if len(values) == 0 {
		return values
	}

	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		trimmed := T(strings.TrimSpace(string(v)))
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
