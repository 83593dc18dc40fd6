package util

import (
	"regexp"
	"strings"
	"unicode"
)

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// ConstName converts a camelCase or PascalCase identifier to constant style:
// "fooBar" -> "FOO_BAR", "GraphComponent" -> "GRAPH_COMPONENT".
// Input that is already upper snake case is not guaranteed to round-trip.
func ConstName(s string) string {
	return strings.ToUpper(camelBoundary.ReplaceAllString(s, "${1}_${2}"))
}

// Capitalize upper-cases the first letter: "nodeCreated" -> "NodeCreated".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
