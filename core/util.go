package core

import "strings"

// CleanString trims surrounding whitespace.
func CleanString(s string) string {
	return strings.TrimSpace(s)
}

// CleanLower trims surrounding whitespace and lowers s, for case-insensitive input.
func CleanLower(s string) string {
	return strings.ToLower(CleanString(s))
}
