package errors

import (
	"testing"
)

func TestValidateSegment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "junit", false},
		{"dashes", "junit-jupiter-api", false},
		{"dotted version", "6.4.4.Final", false},
		{"snapshot", "1.0-SNAPSHOT", false},
		{"plus", "1.0+build", false},

		{"empty", "", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"slash", "a/b", true},
		{"space", "a b", true},
		{"query", "a?b", true},
		{"fragment", "a#b", true},
		{"percent", "a%20b", true},
		{"control char", "a\x01b", true},
		{"non-ascii", "café", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSegment("field", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSegment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCoordinate) {
				t.Errorf("ValidateSegment(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidCoordinate)
			}
		})
	}
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
		wantErr  bool
	}{
		{"maven central", "https://repo1.maven.org/", "/", false},
		{"no trailing slash", "https://repo1.maven.org", "/", false},
		{"with path", "http://localhost:8081/nexus", "/nexus/", false},

		{"empty", "", "", true},
		{"ftp scheme", "ftp://example.com/", "", true},
		{"relative", "repo1.maven.org", "", true},
		{"query", "https://example.com/?a=b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ValidateBaseURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateBaseURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidInput) {
					t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
				}
				return
			}
			if u.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", u.Path, tt.wantPath)
			}
		})
	}
}
