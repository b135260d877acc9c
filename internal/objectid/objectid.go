// Package objectid generates and checks the 24-character hex identifiers
// used for all public resource ids.
package objectid

import (
	"crypto/rand"
	"encoding/hex"
)

const idLen = 24

// New returns a random 24-character lowercase hex id (12 random bytes).
func New() string {
	b := make([]byte, idLen/2)
	// crypto/rand.Read never fails on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// IsValid reports whether s is a well-formed id: exactly 24 hex characters.
func IsValid(s string) bool {
	if len(s) != idLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
