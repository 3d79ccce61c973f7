package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeQuery lowercases raw search input and collapses repeated
// whitespace. Accent stripping is done in SQL via unaccent(); this is
// the Go half of the normalization contract.
func NormalizeQuery(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
