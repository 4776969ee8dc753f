package admin

import (
	"testing"

	"github.com/haukened/backlist/internal/backlist/domain"
)

func TestLint(t *testing.T) {
	tests := []struct {
		entry  string
		reason string
	}{
		{"example.com", ""},
		{"sub.example.co.uk", ""},
		{"203.0.113.5", ""},
		{"2001:db8::1", ""},
		{"localhost", ""},
		{"com", reasonPublicSuffix},
		{"co.uk", reasonPublicSuffix},
		{"github.io", reasonPublicSuffix},
		{"Example.com", reasonUppercase},
		{"*.example.com", reasonPattern},
		{"203.0.113.0/24", reasonPattern},
		{"http://example.com", reasonURL},
	}
	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			got := Lint(domain.ParsedList{tt.entry})
			if tt.reason == "" {
				if len(got) != 0 {
					t.Fatalf("Lint(%q) = %+v, want no warnings", tt.entry, got)
				}
				return
			}
			if len(got) != 1 || got[0].Reason != tt.reason || got[0].Entry != tt.entry {
				t.Fatalf("Lint(%q) = %+v, want reason %q", tt.entry, got, tt.reason)
			}
		})
	}
}

func TestLint_Many(t *testing.T) {
	got := Lint(domain.ParsedList{"ok.example", "com", "fine.example", "Bad.example"})
	if len(got) != 2 {
		t.Fatalf("expected 2 warnings, got %+v", got)
	}
	if got[0].Entry != "com" || got[1].Entry != "Bad.example" {
		t.Errorf("warnings out of order: %+v", got)
	}
}
