package securex

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// SecureCompare compares two strings in constant time with respect to their
// contents. Lengths are compared first; a length mismatch fails immediately,
// which leaks nothing an attacker does not already control. Do not replace
// the XOR accumulation with == : a short-circuiting comparison reopens the
// timing side channel.
func SecureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var result byte
	for i := 0; i < len(a); i++ {
		result |= a[i] ^ b[i]
	}
	return result == 0
}

// GenerateNonce returns 16 cryptographically random bytes as lowercase hex,
// suitable for a Content-Security-Policy script nonce.
func GenerateNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var sqlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|CREATE|ALTER|EXEC|EXECUTE|UNION|DECLARE)\b`),
	regexp.MustCompile(`(?i)(--|;|/\*|\*/|xp_|sp_)`),
	regexp.MustCompile(`(?i)('OR'|"OR"|'AND'|"AND")`),
}

// ContainsSQLInjectionPattern reports whether s matches common SQL
// injection fingerprints. The backend owns real injection prevention;
// this is an extra client-side tripwire, nothing more.
func ContainsSQLInjectionPattern(s string) bool {
	for _, p := range sqlPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

var noSQLPatterns = regexp.MustCompile(`(?i)\$(where|ne|gt|lt|or|and|regex)`)

// ContainsNoSQLInjectionPattern reports whether s contains Mongo-style
// operator fingerprints.
func ContainsNoSQLInjectionPattern(s string) bool {
	return noSQLPatterns.MatchString(s)
}
