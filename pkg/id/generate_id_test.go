package id

import (
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := NewID32()
		if !reHex32.MatchString(v) {
			t.Fatalf("id %q is not 32-char lowercase hex", v)
		}
		if seen[v] {
			t.Fatalf("duplicate id generated: %s", v)
		}
		seen[v] = true
	}
}
