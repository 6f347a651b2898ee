package components

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/elysium/internal/action"
	"github.com/muurk/elysium/internal/fleet"
	"github.com/muurk/elysium/internal/fleet/fleettest"
	"github.com/muurk/elysium/internal/keybind"
	"github.com/muurk/elysium/internal/tui"
	"github.com/muurk/elysium/internal/ui"
)

func draw(t *testing.T, c tui.Component, width, height int) string {
	t.Helper()
	f := tui.NewFrame(width, height)
	require.NoError(t, c.Draw(f, f.Area()))
	return ansi.Strip(f.String())
}

func loadedShared(t *testing.T) *fleet.Shared {
	t.Helper()
	shared := fleet.NewShared(fleettest.New(fleettest.Sample()))
	require.NoError(t, shared.Load(context.Background()))
	return shared
}

func TestHeaderCyclesTabs(t *testing.T) {
	h := NewHeader(ui.DefaultTheme())

	tests := []struct {
		name   string
		from   fleet.Category
		action action.Kind
		want   fleet.Category
	}{
		{"tab", fleet.CoreDevices, action.Tab, fleet.ThingGroups},
		{"tab wraps", fleet.Deployments, action.Tab, fleet.CoreDevices},
		{"right", fleet.ThingGroups, action.Right, fleet.Deployments},
		{"left wraps", fleet.CoreDevices, action.Left, fleet.Deployments},
		{"left", fleet.Deployments, action.Left, fleet.ThingGroups},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update(t, h, action.NewTabChange(tt.from))
			got := update(t, h, action.New(tt.action))
			assert.Equal(t, action.NewTabChange(tt.want), got)
			assert.Equal(t, tt.from, h.Active(), "the index only moves when the TabChange comes back")
		})
	}
}

func TestHeaderDraw(t *testing.T) {
	h := NewHeader(ui.DefaultTheme())
	out := draw(t, h, 100, 30)

	assert.Contains(t, out, "elysium - v")
	assert.Contains(t, out, "Core Devices │ Thing Groups │ Deployments")
	assert.Contains(t, out, "|←→|")
}

func TestTopLeftChart(t *testing.T) {
	chart := NewTopLeft(loadedShared(t), ui.DefaultTheme())
	require.NoError(t, chart.Init(tui.Size{}))

	assert.False(t, chart.Visible())
	assert.Contains(t, draw(t, chart, 100, 30), "press g to show the status chart")

	update(t, chart, action.New(action.GraphToggle))
	require.True(t, chart.Visible())
	assert.Equal(t, []StatusCount{{"HEALTHY", 2}, {"UNHEALTHY", 1}}, chart.Counts())

	out := draw(t, chart, 100, 30)
	assert.Contains(t, out, "|status|")
	assert.Contains(t, out, "HEALTHY")
	assert.Contains(t, out, "UNHEALTHY")

	update(t, chart, action.NewTabChange(fleet.ThingGroups))
	assert.Nil(t, chart.Counts())
	assert.Contains(t, draw(t, chart, 100, 30), "Thing Groups have no status to chart")

	update(t, chart, action.NewTabChange(fleet.Deployments))
	assert.Empty(t, chart.Counts())
	assert.Contains(t, draw(t, chart, 100, 30), "no rows")

	update(t, chart, action.New(action.GraphToggle))
	assert.False(t, chart.Visible())
}

func TestTopLeftHiddenOnCompactScreens(t *testing.T) {
	chart := NewTopLeft(loadedShared(t), ui.DefaultTheme())
	update(t, chart, action.New(action.GraphToggle))

	assert.NotContains(t, draw(t, chart, 100, 15), "|status|")
}

func TestCountStatuses(t *testing.T) {
	rows := fleet.Rows{
		{"a", "FAILED"},
		{"b", ""},
		{"c", "ACTIVE"},
		{"d"},
		{"e", "ACTIVE"},
	}
	assert.Equal(t, []StatusCount{
		{"ACTIVE", 2},
		{"UNKNOWN", 2},
		{"FAILED", 1},
	}, countStatuses(rows, 1))
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTopRightStatsGate(t *testing.T) {
	shared := fleet.NewShared(fleettest.New(fleettest.Sample()))
	c := &clock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	panel := NewTopRight(shared, ui.DefaultTheme(), Session{Profile: "ops", Region: "eu-west-1"})
	panel.now = c.now
	require.NoError(t, panel.Init(tui.Size{}))

	require.NoError(t, shared.Load(context.Background()))

	c.advance(time.Second)
	update(t, panel, action.New(action.Tick))
	assert.Zero(t, panel.state().Loads, "ticks inside the interval do not re-read")

	c.advance(statsInterval)
	update(t, panel, action.New(action.Tick))
	assert.Equal(t, 1, panel.state().Loads)

	require.NoError(t, shared.Load(context.Background()))
	update(t, panel, action.New(action.DataLoaded))
	assert.Equal(t, 2, panel.state().Loads, "DataLoaded re-reads immediately")
	assert.Equal(t, "6s", panel.state().Uptime)
}

func TestTopRightDraw(t *testing.T) {
	panel := NewTopRight(loadedShared(t), ui.DefaultTheme(), Session{Profile: "ops", Region: "us-east-2"})
	require.NoError(t, panel.Init(tui.Size{}))

	out := draw(t, panel, 100, 30)
	assert.Contains(t, out, "|session|")
	assert.Contains(t, out, "ops")
	assert.Contains(t, out, "us-east-2")
	assert.Contains(t, out, "(1 loads)")

	update(t, panel, action.NewNotice("Exported to /tmp/x.yaml"))
	assert.Contains(t, draw(t, panel, 100, 30), "Exported to /tmp/x.yaml")
	assert.Equal(t, "Exported to /tmp/x.yaml", panel.Report().State.(SessionState).Notice)
}

func TestHelpBar(t *testing.T) {
	bar := NewHelpBar(ui.DefaultTheme(), keybind.Default())

	out := draw(t, bar, 120, 30)
	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "q/ctrl+c/ctrl+d quit")
	assert.NotContains(t, out, "|keys|")

	update(t, bar, action.NewModeChange(action.Input))
	out = draw(t, bar, 120, 30)
	assert.Contains(t, out, "INPUT")
	assert.Contains(t, out, "enter apply filter")
	assert.Contains(t, out, "esc done")

	update(t, bar, action.NewModeChange(action.Normal))
	update(t, bar, action.New(action.Help))
	out = draw(t, bar, 120, 30)
	assert.Contains(t, out, "|keys|")
	assert.Contains(t, out, "clear filter")

	update(t, bar, action.New(action.Help))
	assert.NotContains(t, draw(t, bar, 120, 30), "|keys|")
}

func TestHelpBarFullHelpColumns(t *testing.T) {
	bar := NewHelpBar(ui.DefaultTheme(), keybind.Default())

	cols := bar.FullHelp()
	total := 0
	for _, col := range cols {
		assert.LessOrEqual(t, len(col), helpColumns)
		total += len(col)
	}
	assert.Equal(t, len(bar.ShortHelp()), total)
	assert.Equal(t, len(keybind.Default().Entries(action.Normal)), total)
}
