// Package utils provides shared utility functions used across multiple packages.
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// JSONPointerToPath converts a JSON Pointer (RFC 6901) to a dot-notation path.
// For example, "#/tasks/0/status" becomes "tasks[0].status".
// This is useful for converting JSON Schema validation error locations to
// human-readable paths.
func JSONPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		// ~1 represents / and ~0 represents ~
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// NormalizeToken lowercases and trims input and folds '-' and ' ' into '_'.
func NormalizeToken(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// NormalizeStatus maps user-typed status aliases to the serialized token.
// Accepts "in-progress", "in_progress", "inprogress" and "in progress" for
// in_progress. Returns the input unchanged when it is not a known alias so
// callers can report it verbatim.
func NormalizeStatus(input string) string {
	switch NormalizeToken(input) {
	case "todo":
		return "todo"
	case "in_progress", "inprogress":
		return "in_progress"
	case "done":
		return "done"
	default:
		return input
	}
}

// NormalizeChoice returns the normalized input and true if it is one of
// choices.
func NormalizeChoice(input string, choices ...string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, c := range choices {
		if s == c {
			return c, true
		}
	}
	return s, false
}
