// Package password wraps bcrypt for one-way password hashing.
package password

import "golang.org/x/crypto/bcrypt"

// hashCost matches the work factor the API has always used; raising it
// invalidates nothing (bcrypt embeds the cost in the hash) but slows signup.
const hashCost = 8

// Hash derives a salted bcrypt hash from the plaintext.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored hash. Malformed
// hashes verify as false, never panic or error out.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
