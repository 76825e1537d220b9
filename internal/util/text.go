package util

import (
	"regexp"
	"strings"
)

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeHeader lowercases and trims the input, then collapses every run of
// characters outside [a-z0-9] into a single underscore. Idempotent.
func NormalizeHeader(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	return reNonAlnum.ReplaceAllString(s, "_")
}

// ContainsWord reports whether word occurs in s delimited by underscores or
// string boundaries. Both arguments are expected in normalized form.
func ContainsWord(s, word string) bool {
	if word == "" {
		return false
	}
	for from := 0; ; {
		idx := strings.Index(s[from:], word)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(word)
		leftOK := start == 0 || s[start-1] == '_'
		rightOK := end == len(s) || s[end] == '_'
		if leftOK && rightOK {
			return true
		}
		from = start + 1
	}
}
