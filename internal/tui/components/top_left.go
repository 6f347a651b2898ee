package components

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/elysium/internal/action"
	"github.com/muurk/elysium/internal/fleet"
	"github.com/muurk/elysium/internal/tui"
	"github.com/muurk/elysium/internal/ui"
)

// legendWidth is the column left of the bars holding "STATUS  n" lines.
const legendWidth = 20

// statusColors are the bar colors of known statuses. Anything else uses the
// muted color.
var statusColors = map[string]lipgloss.Color{
	"HEALTHY":   ui.SuccessColor,
	"UNHEALTHY": ui.ErrorColor,
	"ACTIVE":    ui.PrimaryColor,
	"COMPLETED": ui.SuccessColor,
	"CANCELED":  ui.WarningColor,
	"FAILED":    ui.ErrorColor,
	"INACTIVE":  ui.MutedColor,
}

// StatusCount is the number of rows with one status.
type StatusCount struct {
	Status string `yaml:"status"`
	Count  int    `yaml:"count"`
}

// TopLeft draws a bar chart of rows per status for the active category.
type TopLeft struct {
	shared   *fleet.Shared
	theme    ui.Theme
	category fleet.Category
	visible  bool
	counts   []StatusCount
}

// NewTopLeft returns a hidden status chart over shared.
func NewTopLeft(shared *fleet.Shared, theme ui.Theme) *TopLeft {
	return &TopLeft{shared: shared, theme: theme}
}

// Visible reports whether the chart is shown.
func (t *TopLeft) Visible() bool { return t.visible }

// Counts returns the status counts of the active category, largest first.
func (t *TopLeft) Counts() []StatusCount { return t.counts }

// Init counts whatever was loaded before the loop started.
func (t *TopLeft) Init(tui.Size) error {
	t.recount()
	return nil
}

// Update implements tui.Component.
func (t *TopLeft) Update(a action.Action) (action.Action, error) {
	switch a.Kind {
	case action.GraphToggle:
		t.visible = !t.visible
	case action.TabChange:
		t.category = a.Category
		t.recount()
	case action.DataLoaded:
		t.recount()
	}
	return action.Action{}, nil
}

// recount keeps the previous counts while a load holds the source.
func (t *TopLeft) recount() {
	col := t.category.StatusColumn()
	if col < 0 {
		t.counts = nil
		return
	}
	rows, ok := t.shared.TrySnapshot(t.category)
	if !ok {
		return
	}
	t.counts = countStatuses(rows, col)
}

func countStatuses(rows fleet.Rows, col int) []StatusCount {
	byStatus := map[string]int{}
	for _, row := range rows {
		status := "UNKNOWN"
		if col < len(row) && row[col] != "" {
			status = row[col]
		}
		byStatus[status]++
	}

	counts := make([]StatusCount, 0, len(byStatus))
	for s, n := range byStatus {
		counts = append(counts, StatusCount{Status: s, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Status < counts[j].Status
	})
	return counts
}

// Report implements tui.Reporter.
func (t *TopLeft) Report() tui.Report {
	return tui.Report{Name: "chart", State: struct {
		Visible bool          `yaml:"visible"`
		Counts  []StatusCount `yaml:"counts"`
	}{t.visible, t.counts}}
}

// Draw implements tui.Component.
func (t *TopLeft) Draw(f *tui.Frame, area tui.Rect) error {
	r := tui.Split(area).TopLeft
	if r.Width < 10 || r.Height < 3 {
		return nil
	}
	inner := r.Inner()

	var lines []string
	switch {
	case !t.visible:
		lines = []string{t.theme.Label.Render(" press g to show the status chart")}
	case t.category.StatusColumn() < 0:
		lines = []string{t.theme.Label.Render(" " + t.category.Title() + " have no status to chart")}
	case len(t.counts) == 0:
		lines = []string{t.theme.Label.Render(" no rows")}
	}
	if lines != nil {
		f.Render(r, tui.Box(t.theme.Box, r, lines))
		f.SetString(r.X+2, r.Y, t.theme.BoxTitle.Render("|status|"))
		return nil
	}

	f.Render(r, tui.Box(t.theme.Box, r, t.legend(inner.Height)))
	f.SetString(r.X+2, r.Y, t.theme.BoxTitle.Render("|status|"))

	chartW := inner.Width - legendWidth - 1
	if chartW < 4 {
		return nil
	}
	chart := tui.Rect{X: inner.X + legendWidth + 1, Y: inner.Y, Width: chartW, Height: inner.Height}
	f.Render(chart, t.chart(chart.Width, chart.Height))
	return nil
}

func (t *TopLeft) legend(height int) []string {
	lines := make([]string, 0, height)
	for i, c := range t.counts {
		if i == height {
			break
		}
		name := fit(c.Status, legendWidth-6)
		lines = append(lines, " "+lipgloss.NewStyle().Foreground(statusColor(c.Status)).Render(name)+
			t.theme.Value.Render(fmt.Sprintf("%5d", c.Count)))
	}
	return lines
}

func (t *TopLeft) chart(width, height int) string {
	barW := max((width-len(t.counts)+1)/max(len(t.counts), 1), 1)
	bc := barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(min(barW, 6)),
		barchart.WithNoAxis(),
	)
	for _, c := range t.counts {
		color := statusColor(c.Status)
		bc.Push(barchart.BarData{
			Label: c.Status,
			Values: []barchart.BarValue{
				{Name: c.Status, Value: float64(c.Count), Style: lipgloss.NewStyle().Foreground(color).Background(color)},
			},
		})
	}
	bc.Draw()
	return bc.View()
}

func statusColor(status string) lipgloss.Color {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return ui.MutedColor
}
