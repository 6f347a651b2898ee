package version

import (
	"runtime/debug"
	"testing"
)

func withVersion(t *testing.T, v, c string) {
	t.Helper()
	oldV, oldC := Version, Commit
	Version, Commit = v, c
	t.Cleanup(func() { Version, Commit = oldV, oldC })
}

func TestTitle(t *testing.T) {
	withVersion(t, "1.2.3", "abc1234")

	if got, want := Title(), "elysium - v1.2.3"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	if got, want := Full(), "1.2.3 (commit: abc1234)"; got != want {
		t.Errorf("Full() = %q, want %q", got, want)
	}
}

func TestFillFromBuildInfo(t *testing.T) {
	tests := []struct {
		name       string
		info       debug.BuildInfo
		wantVer    string
		wantCommit string
	}{
		{
			name: "tagged module with clean tree",
			info: debug.BuildInfo{
				Main: debug.Module{Version: "v0.4.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "false"},
				},
			},
			wantVer:    "0.4.1",
			wantCommit: "0123456",
		},
		{
			name: "devel build with dirty tree",
			info: debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "fedcba9"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			wantVer:    "",
			wantCommit: "fedcba9-dirty",
		},
		{
			name:       "no vcs info",
			info:       debug.BuildInfo{},
			wantVer:    "",
			wantCommit: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, "", "")
			fillFromBuildInfo(&tt.info)
			if Version != tt.wantVer {
				t.Errorf("Version = %q, want %q", Version, tt.wantVer)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestFillFromBuildInfoKeepsLdflags(t *testing.T) {
	withVersion(t, "v2.0.0", "deadbee")
	fillFromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "1111111111"}},
	})
	if Version != "2.0.0" {
		t.Errorf("Version = %q, want %q", Version, "2.0.0")
	}
	if Commit != "deadbee" {
		t.Errorf("Commit = %q, want %q", Commit, "deadbee")
	}
}
