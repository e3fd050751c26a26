package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildVersion(t *testing.T) {
	t.Parallel()

	// Resolves to the ldflags value, the module version, or "(devel)".
	if buildVersion() == "" {
		t.Error("buildVersion() returned empty string")
	}
}

func TestBuildRevision(t *testing.T) {
	t.Parallel()

	// Resolves to a short VCS hash or "unknown"; never empty.
	if buildRevision() == "" {
		t.Error("buildRevision() returned empty string")
	}
}

func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd()

	t.Run("command has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "version" {
			t.Errorf("expected Use to be 'version', got %q", cmd.Use)
		}
	})

	t.Run("command has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected Short to be non-empty")
		}
	})

	t.Run("command outputs version info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&buf)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		out := buf.String()
		if !strings.HasPrefix(out, "domainscan ") {
			t.Errorf("expected version line, got %q", out)
		}
	})
}
