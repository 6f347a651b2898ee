package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/elysium/internal/config"
)

func TestFailureResultRender(t *testing.T) {
	r := NewFailureResult("Cannot reach AWS", errors.New("dispatch failure"), []string{"run aws login"}).
		SetWidth(80).
		AddDetail("Profile", "iotmgmt_prod")

	out := ansi.Strip(r.Render())
	for _, want := range []string{"FAILED", "Cannot reach AWS", "Error: dispatch failure", "Troubleshooting:", "run aws login", "Profile:", "iotmgmt_prod"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 80 {
			t.Errorf("line %d is %d cells wide, want <= 80", i, w)
		}
	}
}

func TestSuccessResultKeepsDetailOrder(t *testing.T) {
	out := ansi.Strip(NewSuccessResult("Config written",
		Detail{Key: "Path", Value: "/tmp/a"},
		Detail{Key: "Keys", Value: "12"},
	).SetWidth(70).Render())

	if !strings.Contains(out, "SUCCESS") {
		t.Errorf("Render() missing SUCCESS:\n%s", out)
	}
	if strings.Index(out, "Path:") > strings.Index(out, "Keys:") {
		t.Errorf("details rendered out of order:\n%s", out)
	}
}

func TestRenderClampsWidth(t *testing.T) {
	out := NewSuccessResult("narrow").SetWidth(10).Render()
	first := strings.Split(out, "\n")[0]
	if w := ansi.StringWidth(first); w != MinTerminalWidth {
		t.Errorf("box width = %d, want %d", w, MinTerminalWidth)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).SetWidth(70).PrintError("Refresh failed", errors.New("boom"), nil)

	out := ansi.Strip(buf.String())
	if !strings.Contains(out, "boom") || strings.Contains(out, "Troubleshooting") {
		t.Errorf("PrintError() output unexpected:\n%s", out)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("PrintError() should end with a newline")
	}
}

func TestNewTheme(t *testing.T) {
	s := config.Default().Styles
	s.Highlight = config.ColorPair{FG: "#010203", BG: "#0a0b0c"}
	th := NewTheme(s)

	if got := th.Selected.GetForeground(); got != lipgloss.Color("#010203") {
		t.Errorf("Selected foreground = %v, want #010203", got)
	}
	if got := th.Selected.GetBackground(); got != lipgloss.Color("#0a0b0c") {
		t.Errorf("Selected background = %v, want #0a0b0c", got)
	}
	if got := th.InputFocused.GetBorderTopForeground(); got != th.Accent {
		t.Errorf("InputFocused border = %v, want accent %v", got, th.Accent)
	}
	if got := th.InputBlurred.GetBorderTopForeground(); got != th.Muted {
		t.Errorf("InputBlurred border = %v, want muted %v", got, th.Muted)
	}
}
