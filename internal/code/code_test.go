package code

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateMatchesPattern(t *testing.T) {
	for i := 0; i < 100; i++ {
		c, err := Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !Valid(c) {
			t.Fatalf("generated code %q does not match canonical pattern", c)
		}
	}
}

func TestGenerateAtPrefix(t *testing.T) {
	at := time.Date(2026, 8, 28, 15, 42, 30, 0, time.Local)
	c, err := GenerateAt(at)
	if err != nil {
		t.Fatalf("GenerateAt: %v", err)
	}
	if !strings.HasPrefix(c, "260828-1542-") {
		t.Errorf("expected prefix '260828-1542-', got %q", c)
	}
	if len(c) != len("260828-1542-")+SuffixLength {
		t.Errorf("unexpected code length: %q", c)
	}
}

func TestGenerateNoCollisionsSameMinute(t *testing.T) {
	// All codes share a minute bucket, so uniqueness rests entirely on
	// the random suffix.
	at := time.Date(2026, 8, 28, 15, 42, 0, 0, time.Local)
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		c, err := GenerateAt(at)
		if err != nil {
			t.Fatalf("GenerateAt: %v", err)
		}
		if seen[c] {
			t.Fatalf("collision after %d samples: %q", i, c)
		}
		seen[c] = true
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"260828-1542-kX7Qp2mRa9Lw", true},
		{"260828-1542-kX7Qp2mRa9L", false},   // suffix too short
		{"260828-1542-kX7Qp2mRa9Lw1", false}, // suffix too long
		{"260828-1542-kX7Qp2mRa9L!", false},  // invalid character
		{"2608281542-kX7Qp2mRa9Lw", false},
		{"260828-154-kX7Qp2mRa9Lw", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.code); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
