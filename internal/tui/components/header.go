package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/elysium/internal/action"
	"github.com/muurk/elysium/internal/fleet"
	"github.com/muurk/elysium/internal/tui"
	"github.com/muurk/elysium/internal/ui"
	"github.com/muurk/elysium/internal/version"
)

// Header draws the title line and the category tabs, and owns which tab is
// active.
type Header struct {
	theme  ui.Theme
	active int
}

// NewHeader returns a header with the first category active.
func NewHeader(theme ui.Theme) *Header {
	return &Header{theme: theme}
}

// Active returns the selected category.
func (h *Header) Active() fleet.Category { return fleet.Categories[h.active] }

// Update implements tui.Component.
func (h *Header) Update(a action.Action) (action.Action, error) {
	n := len(fleet.Categories)
	switch a.Kind {
	case action.Tab, action.Right:
		return action.NewTabChange(fleet.Categories[(h.active+1)%n]), nil
	case action.Left:
		return action.NewTabChange(fleet.Categories[(h.active+n-1)%n]), nil
	case action.TabChange:
		h.active = a.Category.Index()
	}
	return action.Action{}, nil
}

// Report implements tui.Reporter.
func (h *Header) Report() tui.Report {
	return tui.Report{Name: "header", State: map[string]string{"tab": h.Active().Slug()}}
}

// Draw implements tui.Component.
func (h *Header) Draw(f *tui.Frame, area tui.Rect) error {
	l := tui.Split(area)

	if !l.Title.Empty() {
		title := h.theme.Title.Render(" " + version.Title())
		f.SetString(l.Title.X, l.Title.Y, title)
	}

	r := l.Tabs
	if r.Width < 8 || r.Height < 3 {
		return nil
	}
	tabs := make([]string, len(fleet.Categories))
	for i, c := range fleet.Categories {
		if i == h.active {
			tabs[i] = h.theme.TabActive.Render(c.Title())
			continue
		}
		tabs[i] = h.theme.TabInactive.Render(c.Title())
	}
	sep := h.theme.Label.Render(" │ ")
	f.Render(r, tui.Box(h.theme.Box, r, []string{" " + strings.Join(tabs, sep)}))

	hint := "|←→|"
	f.SetString(r.X+r.Width-2-ansi.StringWidth(hint), r.Y+r.Height-1, h.theme.Label.Render(hint))
	return nil
}
