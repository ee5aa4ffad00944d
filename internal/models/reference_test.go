package models

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerateReferenceIDFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := GenerateReferenceID()

		if !ValidReferenceID(id) {
			t.Fatalf("Generated id %q does not match the reference format", id)
		}

		parts := strings.Split(id, "-")
		if len(parts) != 3 {
			t.Fatalf("Expected 3 dash-separated parts, got %q", id)
		}
		if parts[0] != "INC" {
			t.Errorf("Expected INC prefix, got %q", parts[0])
		}
		if parts[1] != strconv.Itoa(time.Now().Year()) {
			t.Errorf("Expected current year, got %q", parts[1])
		}

		suffix, err := strconv.Atoi(parts[2])
		if err != nil {
			t.Fatalf("Suffix %q is not numeric", parts[2])
		}
		if suffix < 100 || suffix > 999 {
			t.Errorf("Suffix %d outside [100, 999]", suffix)
		}
	}
}

func TestValidReferenceID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"INC-2024-123", true},
		{"INC-2026-999", true},
		{"INC-2026-100", true},
		{"INC-2026-99", false},
		{"INC-2026-1000", false},
		{"INC-26-123", false},
		{"inc-2026-123", false},
		{"INC-2026-abc", false},
		{"INC-2026-123-extra", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidReferenceID(tt.id); got != tt.valid {
			t.Errorf("ValidReferenceID(%q) = %v, want %v", tt.id, got, tt.valid)
		}
	}
}

func TestGeneratedSuffixCoversRange(t *testing.T) {
	// With 900 possible suffixes, 20k draws should hit both extremes.
	seen := map[string]bool{}
	for i := 0; i < 20000; i++ {
		id := GenerateReferenceID()
		seen[strings.Split(id, "-")[2]] = true
	}

	for _, suffix := range []int{100, 999} {
		if !seen[fmt.Sprintf("%d", suffix)] {
			t.Errorf("Suffix %d never generated in 20000 draws", suffix)
		}
	}
}
