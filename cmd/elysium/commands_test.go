package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/muurk/elysium/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("LOCALAPPDATA", dir)
	t.Setenv("ELYSIUM_PROFILE", "")
	t.Setenv("ELYSIUM_REGION", "")
	t.Setenv("ELYSIUM_LOG_LEVEL", "")
	return dir
}

// newTestCommand returns a root command with fresh flag state.
func newTestCommand(args ...string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{
		Use:           "elysium",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDashboard,
	}
	registerFlags(cmd)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	return cmd, &out
}

func TestDumpConfigPrecedence(t *testing.T) {
	isolate(t)
	t.Setenv("ELYSIUM_REGION", "ap-south-1")
	t.Setenv("ELYSIUM_PROFILE", "from-env")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "environment over defaults",
			args: []string{"--dump-config"},
			want: []string{"profile: from-env", "region: ap-south-1"},
		},
		{
			name: "flags over environment",
			args: []string{"--dump-config", "-p", "ops", "--region", "us-west-2"},
			want: []string{"profile: ops", "region: us-west-2"},
		},
		{
			name: "verbosity",
			args: []string{"--dump-config", "-vv"},
			want: []string{"log-level: debug"},
		},
		{
			name: "log level flag wins over verbosity",
			args: []string{"--dump-config", "-v", "--log-level", "warn"},
			want: []string{"log-level: warn"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := newTestCommand(tt.args...)
			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q:\n%s", w, out.String())
				}
			}
		})
	}
}

func TestWriteConfig(t *testing.T) {
	isolate(t)

	cmd, _ := newTestCommand("--write-config", "--profile", "staging")
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	def, err := config.GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(def)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Profile != "staging" {
		t.Errorf("Profile = %q, want staging", cfg.Profile)
	}
}

func TestMissingExplicitConfig(t *testing.T) {
	dir := isolate(t)

	cmd, _ := newTestCommand("--dump-config", "--config", filepath.Join(dir, "absent.yaml"))
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() should fail for a missing --config file")
	}
}

func TestRejectsArguments(t *testing.T) {
	isolate(t)

	cmd, _ := newTestCommand("devices")
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() should reject positional arguments")
	}
}
