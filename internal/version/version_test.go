package version

import (
	"strings"
	"testing"
)

func TestShortCommit(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{"full hash", "0123456789abcdef0123456789abcdef01234567", "01234567"},
		{"exactly eight", "abcd1234", "abcd1234"},
		{"abbreviated", "abc123", "abc123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortCommit(tt.commit); got != tt.want {
				t.Errorf("shortCommit(%q) = %q, want %q", tt.commit, got, tt.want)
			}
		})
	}
}

func TestStringWithShortCommit(t *testing.T) {
	origCommit, origDate := Commit, Date
	defer func() { Commit, Date = origCommit, origDate }()

	Commit = "abc123"
	Date = "2025-01-01T00:00:00Z"

	got := String()
	if !strings.Contains(got, "commit: abc123") {
		t.Errorf("String() = %q, want abbreviated commit abc123", got)
	}
}

func TestStringDevBuild(t *testing.T) {
	origCommit, origDate := Commit, Date
	defer func() { Commit, Date = origCommit, origDate }()

	Commit = "unknown"
	Date = "unknown"

	got := String()
	if strings.Contains(got, "commit:") {
		t.Errorf("String() = %q, want no commit for dev builds", got)
	}
	if !strings.Contains(got, "brandkit version") {
		t.Errorf("String() = %q, want brandkit version prefix", got)
	}
}
