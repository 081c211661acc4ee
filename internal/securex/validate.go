// Package securex contains input validation and sanitization helpers shared
// across the Planar Standard client. Validators are pure predicates: they
// take a string, return a bool, never panic and never mutate their input.
package securex

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	emailRegexp    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
)

// IsValidEmail reports whether s looks like local@domain.tld and is at most
// 254 characters long. This is a shape check, not RFC 5322 validation.
func IsValidEmail(s string) bool {
	return len(s) <= 254 && emailRegexp.MatchString(s)
}

// IsValidUsername reports whether s is 3-20 characters of [a-zA-Z0-9_-].
func IsValidUsername(s string) bool {
	return usernameRegexp.MatchString(s)
}

// IsValidPassword checks the length policy only: 8 to 128 characters.
// The upper bound exists to keep oversized inputs out of the digest step.
func IsValidPassword(s string) bool {
	return len(s) >= 8 && len(s) <= 128
}

// IsValidUUID reports whether s is a canonical hyphenated 8-4-4-4-12 UUID,
// case-insensitive. Non-canonical encodings accepted by uuid.Parse (URN,
// braced, bare hex) are rejected.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsValidJWTFormat reports whether s has exactly three non-empty
// dot-separated segments. It does not decode or verify anything.
func IsValidJWTFormat(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}
