package password_test

import (
	"testing"

	"github.com/moscow89er/mesto-api/internal/password"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	h, err := password.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !password.Verify("correct horse battery staple", h) {
		t.Error("correct password did not verify")
	}
	if password.Verify("wrong password", h) {
		t.Error("wrong password verified")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h1, err := password.Hash("secret-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := password.Hash("secret-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt missing")
	}
	if !password.Verify("secret-password", h1) || !password.Verify("secret-password", h2) {
		t.Error("salted hashes did not both verify")
	}
}

func TestVerify_MalformedHash_ReturnsFalse(t *testing.T) {
	for _, h := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if password.Verify("anything", h) {
			t.Errorf("malformed hash %q verified", h)
		}
	}
}
