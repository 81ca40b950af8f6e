package pure

import "strings"

// RemoveWS collapses every run of whitespace in s into a single space and
// trims both ends.
func RemoveWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
