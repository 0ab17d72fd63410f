package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	if got, want := String(), "dev (commit none, built unknown)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version dev\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(got, "commit: none") || !strings.Contains(got, "built: unknown") {
		t.Errorf("Template() = %q", got)
	}
}
