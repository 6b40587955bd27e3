package domain

import "strings"

// minEmailLength is exclusive: an address must be longer than this many bytes.
const minEmailLength = 5

// ValidEmail reports whether s looks like an email address: it contains an
// '@', contains a '.', and is longer than five bytes.
//
// This is a syntactic heuristic only. It does not follow RFC 5322 and a true
// result says nothing about whether the address can receive mail.
func ValidEmail(s string) bool {
	return strings.Contains(s, "@") &&
		strings.Contains(s, ".") &&
		len(s) > minEmailLength
}
