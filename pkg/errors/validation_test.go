package errors

import (
	"strings"
	"testing"
)

func TestValidateCraftName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "rocket", false},
		{"valid with spaces", "Kerbal X", false},
		{"valid with dash", "mun-lander-mk2", false},
		{"valid with dot", "probe.v3", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"path traversal", "foo/../bar", true},
		{"path separator", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCraftName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCraftName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCraftID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid uuid", "2b1c3f7e-9a4d-4f7b-8f2e-6d5c4b3a2e1f", false},
		{"valid short", "abc123", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 100), true},
		{"path separator", "a/b", true},
		{"path traversal", "a..b", true},
		{"control char", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCraftID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCraftID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
