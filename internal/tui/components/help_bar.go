package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/elysium/internal/action"
	"github.com/muurk/elysium/internal/keybind"
	"github.com/muurk/elysium/internal/tui"
	"github.com/muurk/elysium/internal/ui"
)

// helpColumns is how many bindings each column of the full help holds.
const helpColumns = 6

var applyFilter = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "apply filter"),
)

// HelpBar is the footer: a mode badge followed by the bindings of the
// current mode. Help toggles a box listing all of them.
type HelpBar struct {
	theme    ui.Theme
	bindings *keybind.Bindings
	help     help.Model
	mode     action.Mode
	full     bool
}

// NewHelpBar returns a footer listing bindings.
func NewHelpBar(theme ui.Theme, bindings *keybind.Bindings) *HelpBar {
	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = theme.Value.Bold(true)
	h.Styles.ShortDesc = theme.Label
	h.Styles.ShortSeparator = theme.Label
	h.Styles.FullKey = theme.Value.Bold(true)
	h.Styles.FullDesc = theme.Label
	h.Styles.FullSeparator = theme.Label
	h.Styles.Ellipsis = theme.Label

	return &HelpBar{theme: theme, bindings: bindings, help: h}
}

// Update implements tui.Component.
func (h *HelpBar) Update(a action.Action) (action.Action, error) {
	switch a.Kind {
	case action.ModeChange:
		h.mode = a.Mode
	case action.Help:
		h.full = !h.full
	}
	return action.Action{}, nil
}

// keys converts the table entries for the current mode into help bindings.
func (h *HelpBar) keys() []key.Binding {
	entries := h.bindings.Entries(h.mode)
	out := make([]key.Binding, 0, len(entries)+1)
	if h.mode == action.Input {
		out = append(out, applyFilter)
	}
	for _, e := range entries {
		codes := make([]string, len(e.Keys))
		for i, k := range e.Keys {
			codes[i] = k.String()
		}
		out = append(out, key.NewBinding(
			key.WithKeys(codes...),
			key.WithHelp(e.Label(), keybind.Description(e.Action)),
		))
	}
	return out
}

// ShortHelp implements help.KeyMap.
func (h *HelpBar) ShortHelp() []key.Binding { return h.keys() }

// FullHelp implements help.KeyMap.
func (h *HelpBar) FullHelp() [][]key.Binding {
	all := h.keys()
	var cols [][]key.Binding
	for len(all) > 0 {
		n := min(helpColumns, len(all))
		cols = append(cols, all[:n])
		all = all[n:]
	}
	return cols
}

func (h *HelpBar) badge() string {
	if h.mode == action.Input {
		return h.theme.BadgeInput.Render("INPUT")
	}
	return h.theme.BadgeNormal.Render("NORMAL")
}

// Draw implements tui.Component.
func (h *HelpBar) Draw(f *tui.Frame, area tui.Rect) error {
	l := tui.Split(area)
	r := l.Footer
	if r.Empty() {
		return nil
	}

	badge := h.badge()
	h.help.Width = max(r.Width-ansi.StringWidth(badge)-1, 0)
	f.SetString(r.X, r.Y, badge+" "+h.help.ShortHelpView(h.ShortHelp()))

	if h.full {
		h.drawFull(f, l.Table)
	}
	return nil
}

// drawFull places the full help over the bottom of the table.
func (h *HelpBar) drawFull(f *tui.Frame, table tui.Rect) {
	h.help.Width = 0
	body := h.help.FullHelpView(h.FullHelp())
	lines := strings.Split(body, "\n")

	width := 0
	for _, line := range lines {
		width = max(width, ansi.StringWidth(line))
	}
	box := tui.Rect{Width: min(width+4, table.Width), Height: min(len(lines)+2, table.Height)}
	if box.Width < 6 || box.Height < 3 {
		return
	}
	box.X = table.X + (table.Width-box.Width)/2
	box.Y = table.Y + table.Height - box.Height

	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = " " + line
	}
	f.Render(box, tui.Box(h.theme.InputFocused, box, padded))
	f.SetString(box.X+2, box.Y, h.theme.BoxTitle.Render("|keys|"))
}
