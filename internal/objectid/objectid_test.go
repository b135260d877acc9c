package objectid_test

import (
	"testing"

	"github.com/moscow89er/mesto-api/internal/objectid"
)

func TestNew_WellFormed(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := objectid.New()
		if !objectid.IsValid(id) {
			t.Fatalf("New produced invalid id %q", id)
		}
		if seen[id] {
			t.Fatalf("New produced duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"64adf13c9a2b7e0012345678", true},
		{"64adf13c9a2b7e001234567", false},   // 23 chars
		{"64adf13c9a2b7e00123456789", false}, // 25 chars
		{"64adf13c9a2b7e001234567z", false},  // non-hex
		{"", false},
	}

	for _, tc := range cases {
		if got := objectid.IsValid(tc.id); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
