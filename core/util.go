package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// NormalizeCode trims and upper-cases an entity code before it is sent out.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
