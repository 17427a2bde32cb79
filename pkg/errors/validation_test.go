package errors

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"with dash", "vim-jp", false},
		{"digits", "0x1f", false},
		{"mixed case", "Kagami", false},
		{"max length", strings.Repeat("a", 39), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 40), true},
		{"leading dash", "-alice", true},
		{"slash", "alice/bob", true},
		{"dot dot", "..", true},
		{"space", "alice bob", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidUsername) {
				t.Errorf("ValidateUsername(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidUsername)
			}
		})
	}
}

func TestValidateFileComponent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"dots inside", "alice.bob", false},
		{"unicode", "ユーザー", false},

		{"empty", "", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"null byte", "a\x00b", true},
		{"control char", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileComponent(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileComponent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://avatars.githubusercontent.com/u/1?v=4", false},
		{"http", "http://localhost:8080/a.png", false},

		{"empty", "", true},
		{"file scheme", "file:///etc/passwd", true},
		{"no scheme", "avatars.githubusercontent.com/u/1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
