// Package cryptox provides the client-side password digest applied before
// credentials leave the process.
//
// HashPassword is a transport transform, not a credential store primitive:
// the backend receives the digest as the "password" and performs its own
// salted, slow hashing before persisting anything. Nothing produced here
// must ever be treated as the stored credential.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of password.
// The backend contract expects this digest in the passwordHash field of
// login and register payloads.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// WipeBytes zeroes the buffer in place. Callers holding a plaintext
// password should wipe it as soon as the digest is computed.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
