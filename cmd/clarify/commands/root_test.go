// ABOUTME: Tests for the root command wiring
// ABOUTME: Subcommand registration and global flags
package commands

import (
	"bytes"
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Use != "clarify" {
		t.Errorf("Use = %q, want clarify", cmd.Use)
	}

	expected := []string{"extract", "ask", "serve", "mcp", "stats", "version"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"verbose", "quiet"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
}

func TestRootCmd_Help(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("clarification")) {
		t.Error("help output should describe the tool")
	}
}
