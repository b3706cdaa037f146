package encode

import "strings"

// GenDelimiter separates members of a generalization label. Part of the
// wire format (spec.md §6): "; " exactly, never just ";".
const GenDelimiter = "; "

// FormatLabel renders a bucket's member values as the wire label: the
// bare value when the bucket is a singleton, or "{v1; v2; …}" (members
// in ascending domain order) otherwise.
func FormatLabel(values []string) string {
	if len(values) == 1 {
		return values[0]
	}

	return "{" + strings.Join(values, GenDelimiter) + "}"
}

// IsGeneralized reports whether s is a braced generalization label rather
// than a bare singleton value.
func IsGeneralized(s string) bool {
	return len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}'
}

// ParseLabel returns the set of member values encoded by s: s itself for
// a bare singleton, or the split interior of a braced label.
func ParseLabel(s string) []string {
	if !IsGeneralized(s) {
		return []string{s}
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return nil
	}

	return strings.Split(inner, GenDelimiter)
}
