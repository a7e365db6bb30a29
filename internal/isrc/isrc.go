// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package isrc formats and validates International Standard Recording Codes.
// The canonical form is 12 characters without separators: two country
// letters, a three-character registrant, a two-digit year, and a five-digit
// designation (e.g. "GBUM71505078").
package isrc

import (
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{3}[0-9]{2}[0-9]{5}$`)

// WithoutDashes strips separators and uppercases the code. It does not
// validate; use Normalize for that.
func WithoutDashes(code string) string {
	return strings.TrimSpace(strings.ToUpper(strings.ReplaceAll(code, "-", "")))
}

// WithDashes formats a code as CC-XXX-YY-NNNNN. Codes that are not 12
// characters after stripping are returned unchanged.
func WithDashes(code string) string {
	clean := WithoutDashes(code)
	if len(clean) != 12 {
		return code
	}
	return clean[0:2] + "-" + clean[2:5] + "-" + clean[5:7] + "-" + clean[7:12]
}

// Valid reports whether the code matches the ISRC pattern, accepting both
// dashed and undashed input.
func Valid(code string) bool {
	return pattern.MatchString(WithoutDashes(code))
}

// Normalize returns the canonical undashed form, or "" when the code does
// not validate. Malformed codes are treated as absent rather than rejected.
func Normalize(code string) string {
	clean := WithoutDashes(code)
	if !pattern.MatchString(clean) {
		return ""
	}
	return clean
}

// Dashed reports whether the code contains separator dashes.
func Dashed(code string) bool {
	return strings.Contains(code, "-")
}
