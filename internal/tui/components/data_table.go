package components

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/muurk/elysium/internal/action"
	"github.com/muurk/elysium/internal/fleet"
	"github.com/muurk/elysium/internal/keybind"
	"github.com/muurk/elysium/internal/liststate"
	"github.com/muurk/elysium/internal/logging"
	"github.com/muurk/elysium/internal/tui"
	"github.com/muurk/elysium/internal/ui"
)

const (
	// inputWidth is the outer width of the filter box.
	inputWidth = 30
	// inputHeight is the filter strip above the column headers.
	inputHeight = 3
)

// loadingSpinner is shown on the filter box while a refresh is in flight.
// It advances one frame per tick, not on its own timer.
var loadingSpinner = spinner.Spinner{
	Frames: []string{"⠷", "⠯", "⠟", "⠻", "⠽", "⠾"},
	FPS:    time.Second,
}

// fixedWidths are the widths of the leading columns; the rest share what
// remains.
var fixedWidths = []int{30, 10}

// TableOptions configures a DataTable.
type TableOptions struct {
	Fuzzy        bool
	RefreshOnTab bool
}

// DataTable is the filterable resource table. It owns the loading flag and
// the background refresh.
type DataTable struct {
	shared *fleet.Shared
	theme  ui.Theme
	sender tui.Sender

	list     *liststate.ListState
	category fleet.Category
	mode     action.Mode
	input    textinput.Model

	loading      bool
	spinnerIdx   int
	refreshOnTab bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDataTable returns a table over shared, showing core devices.
func NewDataTable(shared *fleet.Shared, theme ui.Theme, opts TableOptions) *DataTable {
	mode := liststate.Substring
	if opts.Fuzzy {
		mode = liststate.Fuzzy
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "filter"
	input.CharLimit = 256
	input.Width = inputWidth - 3
	input.TextStyle = theme.Value
	input.PlaceholderStyle = theme.Label

	ctx, cancel := context.WithCancel(context.Background())
	return &DataTable{
		shared:       shared,
		theme:        theme,
		list:         liststate.New(mode),
		category:     fleet.CoreDevices,
		input:        input,
		refreshOnTab: opts.RefreshOnTab,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// RegisterActionHandler implements tui.ActionHandlerRegistrar.
func (d *DataTable) RegisterActionHandler(s tui.Sender) error {
	d.sender = s
	return nil
}

// Init shows whatever is already loaded and starts a background refresh.
func (d *DataTable) Init(tui.Size) error {
	d.reload()
	return d.refresh()
}

// Loading reports whether a refresh is in flight.
func (d *DataTable) Loading() bool { return d.loading }

// List returns the filtered view backing the table.
func (d *DataTable) List() *liststate.ListState { return d.list }

// refresh starts a Load unless one is already running. The goroutine always
// finishes by sending DataLoaded, preceded by Error when the load failed.
func (d *DataTable) refresh() error {
	if d.loading {
		return nil
	}
	if d.sender == nil {
		return fmt.Errorf("data table: refresh requested before an action handler was registered")
	}
	d.loading = true
	d.spinnerIdx = 0

	ctx, sender := d.ctx, d.sender
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		start := time.Now()
		err := d.shared.Load(ctx)
		logging.LogRefresh("load", time.Since(start), err)
		if err != nil && ctx.Err() == nil {
			sender.Send(action.NewError(err.Error()))
		}
		sender.Send(action.New(action.DataLoaded))
	}()
	return nil
}

// reload rebuilds the list from the current snapshot of the active category.
// While a load holds the source the rows are left empty; DataLoaded reloads
// again once it finishes.
func (d *DataTable) reload() {
	rows, ok := d.shared.TrySnapshot(d.category)
	if !ok {
		rows = nil
	}
	d.list.Load(rows)
}

// HandleEvent implements tui.EventHandler. Keys only matter while the
// filter box is focused; the mouse wheel scrolls in either mode.
func (d *DataTable) HandleEvent(ev tui.Event) (action.Action, error) {
	switch ev.Kind {
	case tui.EventMouse:
		switch ev.Mouse {
		case tui.MouseWheelUp:
			return action.New(action.Up), nil
		case tui.MouseWheelDown:
			return action.New(action.Down), nil
		}
		return action.Action{}, nil

	case tui.EventKey:
		if d.mode != action.Input {
			return action.Action{}, nil
		}
		if ev.Key == (keybind.Key{Code: "enter"}) {
			d.list.Filter(d.input.Value())
			return action.NewModeChange(action.Normal), nil
		}
		if msg, ok := teaKeyMsg(ev); ok {
			d.input, _ = d.input.Update(msg)
		}
	}
	return action.Action{}, nil
}

// Update implements tui.Component.
func (d *DataTable) Update(a action.Action) (action.Action, error) {
	switch a.Kind {
	case action.Tick:
		if d.loading {
			d.spinnerIdx = (d.spinnerIdx + 1) % len(loadingSpinner.Frames)
		}
	case action.DataLoaded:
		d.loading = false
		d.reload()
	case action.Up:
		d.list.Previous(1)
	case action.Down:
		d.list.Next(1)
	case action.Top:
		d.list.First()
	case action.Bottom:
		d.list.Last()
	case action.PageUp:
		d.list.Previous(liststate.PageSize)
	case action.PageDown:
		d.list.Next(liststate.PageSize)
	case action.ModeChange:
		if a.Mode == action.Input && d.loading {
			return action.NewModeChange(action.Normal), nil
		}
		d.setMode(a.Mode)
	case action.TabChange:
		d.category = a.Category
		d.reload()
		if d.refreshOnTab {
			return action.Action{}, d.refresh()
		}
	case action.Clear:
		d.input.Reset()
		d.list.Filter("")
		d.reload()
	case action.Refresh:
		return action.Action{}, d.refresh()
	}
	return action.Action{}, nil
}

func (d *DataTable) setMode(m action.Mode) {
	d.mode = m
	if m == action.Input {
		d.input.Focus()
		return
	}
	d.input.Blur()
}

// Shutdown cancels an in-flight refresh and waits for it until ctx expires.
func (d *DataTable) Shutdown(ctx context.Context) error {
	d.cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logging.Warn("Abandoning in-flight refresh", zap.String("category", d.category.Slug()))
		return ctx.Err()
	}
}

// TableState is the exported state of the table.
type TableState struct {
	Category    string     `yaml:"category"`
	Filter      string     `yaml:"filter"`
	Selected    int        `yaml:"selected"`
	SelectedRow []string   `yaml:"selected_row,omitempty"`
	Total       int        `yaml:"total_rows"`
	Matching    int        `yaml:"matching_rows"`
	Loading     bool       `yaml:"loading"`
	Columns     []string   `yaml:"columns"`
	Rows        [][]string `yaml:"rows"`
}

// Report implements tui.Reporter.
func (d *DataTable) Report() tui.Report {
	st := TableState{
		Category: d.category.Slug(),
		Filter:   d.list.FilterText(),
		Selected: d.list.Selected(),
		Total:    d.list.Total(),
		Matching: d.list.Len(),
		Loading:  d.loading,
		Columns:  d.category.Headers(),
	}
	if row, ok := d.list.SelectedRow(); ok {
		st.SelectedRow = row
	}
	for _, row := range d.list.Rows() {
		st.Rows = append(st.Rows, []string(row))
	}
	return tui.Report{Name: "table", State: st}
}

// Draw implements tui.Component.
func (d *DataTable) Draw(f *tui.Frame, area tui.Rect) error {
	r := tui.Split(area).Table
	if r.Width < inputWidth+4 || r.Height < inputHeight+4 {
		return nil
	}
	inner := r.Inner()

	// Inside the border: the filter strip, the column header, then rows.
	// The last column holds the scrollbar.
	contentW := inner.Width - 1
	rowsH := inner.Height - inputHeight - 1

	lines := make([]string, 0, inner.Height)
	lines = append(lines, d.summaryLines()...)
	lines = append(lines, "  "+d.theme.ColumnHeader.Render(d.formatRow(d.category.Headers(), contentW-2)))

	visible := d.list.Visible(rowsH)
	for i, row := range visible {
		text := d.formatRow(row, contentW-2)
		if d.list.Offset()+i == d.list.Selected() {
			lines = append(lines, d.theme.Marker.Render("▶ ")+d.theme.Selected.Render(text))
			continue
		}
		lines = append(lines, "  "+d.theme.Row.Render(text))
	}
	f.Render(r, tui.Box(d.theme.Box, r, lines))

	title := fmt.Sprintf("|◉ %d|", d.list.Total())
	f.SetString(r.X+2, r.Y, d.theme.BoxTitle.Render(title))
	hint := "|▲▼ select|"
	f.SetString(r.X+r.Width-2-ansi.StringWidth(hint), r.Y+r.Height-1, d.theme.Label.Render(hint))

	d.drawScrollbar(f, tui.Rect{
		X:      inner.X + inner.Width - 1,
		Y:      inner.Y + inputHeight + 1,
		Width:  1,
		Height: rowsH,
	})
	d.drawInput(f, tui.Rect{X: r.X + r.Width - inputWidth - 2, Y: inner.Y, Width: inputWidth, Height: inputHeight})
	return nil
}

// summaryLines fill the left of the filter strip.
func (d *DataTable) summaryLines() []string {
	status := d.theme.Label.Render("showing ") +
		d.theme.Value.Render(fmt.Sprintf("%d/%d", d.list.Len(), d.list.Total())) +
		d.theme.Label.Render(" "+strings.ToLower(d.category.Title()))
	filter := ""
	if s := d.list.FilterText(); s != "" {
		filter = d.theme.Label.Render("filter ") + d.theme.Value.Render(fmt.Sprintf("%q", s))
	}
	return []string{" " + d.category.Title(), " " + status, " " + filter}
}

// formatRow lays cells out in fixed then shared columns, one space apart.
func (d *DataTable) formatRow(cells []string, width int) string {
	n := len(cells)
	if n == 0 || width <= 0 {
		return ""
	}
	widths := make([]int, n)
	remaining := width - (n - 1)
	fill := n
	for i := 0; i < n && i < len(fixedWidths); i++ {
		if i == n-1 {
			break
		}
		widths[i] = fixedWidths[i]
		remaining -= fixedWidths[i]
		fill--
	}
	for i := range widths {
		if widths[i] == 0 {
			widths[i] = max(remaining/fill, 0)
		}
	}

	parts := make([]string, n)
	for i, c := range cells {
		parts[i] = fit(c, widths[i])
	}
	return ansi.Truncate(strings.Join(parts, " "), width, "")
}

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}

func (d *DataTable) drawScrollbar(f *tui.Frame, r tui.Rect) {
	n := d.list.Len()
	if r.Height <= 0 || n <= r.Height {
		return
	}
	thumb := 0
	if n > 1 {
		thumb = d.list.Selected() * (r.Height - 1) / (n - 1)
	}
	for y := 0; y < r.Height; y++ {
		if y == thumb {
			f.SetString(r.X, r.Y+y, d.theme.ScrollThumb.Render("█"))
			continue
		}
		f.SetString(r.X, r.Y+y, d.theme.Scrollbar.Render("│"))
	}
}

func (d *DataTable) drawInput(f *tui.Frame, r tui.Rect) {
	style := d.theme.InputBlurred
	if d.mode == action.Input {
		style = d.theme.InputFocused
	}
	box := tui.Box(style, r, []string{d.input.View()})
	if d.loading {
		box = d.theme.Faint.Render(box)
	}
	f.Render(r, box)
	f.SetString(r.X+1, r.Y+r.Height-1, d.theme.Label.Render("|c clear|i input/esc|"))

	if d.loading {
		glyph := loadingSpinner.Frames[d.spinnerIdx]
		f.SetString(r.X+1, r.Y, d.theme.Spinner.Render(glyph+"loading.."))
	}
}

// teaKeyMsg returns the terminal message behind a key event, building one
// from the key when the event was not produced by the terminal.
func teaKeyMsg(ev tui.Event) (tea.KeyMsg, bool) {
	if msg, ok := ev.Msg.(tea.KeyMsg); ok {
		return msg, true
	}
	k := ev.Key
	if k.Mods != keybind.ModNone {
		return tea.KeyMsg{}, false
	}
	switch k.Code {
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}, true
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}, true
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}, true
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}, true
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true
	}
	if r := []rune(k.Code); len(r) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: r}, true
	}
	return tea.KeyMsg{}, false
}
