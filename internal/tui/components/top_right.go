package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/elysium/internal/action"
	"github.com/muurk/elysium/internal/fleet"
	"github.com/muurk/elysium/internal/tui"
	"github.com/muurk/elysium/internal/ui"
)

// statsInterval gates how often ticks re-read the load statistics.
const statsInterval = 5 * time.Second

// Session identifies the account the dashboard is looking at.
type Session struct {
	Profile string `yaml:"profile"`
	Region  string `yaml:"region"`
}

// SessionState is the exported state of the session panel.
type SessionState struct {
	Session     `yaml:",inline"`
	Loads       int       `yaml:"loads"`
	LastRefresh time.Time `yaml:"last_refresh,omitempty"`
	Uptime      string    `yaml:"uptime"`
	Notice      string    `yaml:"notice,omitempty"`
}

// TopRight is the session panel.
type TopRight struct {
	shared  *fleet.Shared
	theme   ui.Theme
	session Session
	now     func() time.Time

	started  time.Time
	checked  time.Time
	loads    int
	lastLoad time.Time
	notice   string
}

// NewTopRight returns a session panel reading load statistics from shared.
func NewTopRight(shared *fleet.Shared, theme ui.Theme, session Session) *TopRight {
	return &TopRight{shared: shared, theme: theme, session: session, now: time.Now}
}

// Init implements tui.Initializer.
func (t *TopRight) Init(tui.Size) error {
	t.started = t.now()
	t.readStats()
	return nil
}

func (t *TopRight) readStats() {
	t.checked = t.now()
	t.loads, t.lastLoad = t.shared.Stats()
}

// Update implements tui.Component.
func (t *TopRight) Update(a action.Action) (action.Action, error) {
	switch a.Kind {
	case action.Tick:
		if t.now().Sub(t.checked) >= statsInterval {
			t.readStats()
		}
	case action.DataLoaded:
		t.readStats()
	case action.Notice:
		t.notice = a.Message
	}
	return action.Action{}, nil
}

func (t *TopRight) state() SessionState {
	st := SessionState{
		Session:     t.session,
		Loads:       t.loads,
		LastRefresh: t.lastLoad,
		Notice:      t.notice,
	}
	if !t.started.IsZero() {
		st.Uptime = t.now().Sub(t.started).Truncate(time.Second).String()
	}
	return st
}

// Report implements tui.Reporter.
func (t *TopRight) Report() tui.Report {
	return tui.Report{Name: "session", State: t.state()}
}

// Draw implements tui.Component.
func (t *TopRight) Draw(f *tui.Frame, area tui.Rect) error {
	r := tui.Split(area).TopRight
	if r.Width < 10 || r.Height < 3 {
		return nil
	}
	st := t.state()

	last := "never"
	if !st.LastRefresh.IsZero() {
		last = st.LastRefresh.Local().Format("15:04:05")
	}

	rows := []struct{ label, value string }{
		{"profile", st.Profile},
		{"region", st.Region},
		{"refreshed", fmt.Sprintf("%s (%d loads)", last, st.Loads)},
		{"uptime", st.Uptime},
	}
	lines := make([]string, 0, len(rows)+2)
	for _, row := range rows {
		lines = append(lines, " "+t.theme.Label.Render(fmt.Sprintf("%-10s", row.label))+t.theme.Value.Render(row.value))
	}
	if st.Notice != "" {
		width := r.Width - 3
		lines = append(lines, "", " "+t.theme.Notice.Render(ansi.Truncate(st.Notice, width, "…")))
	}

	f.Render(r, tui.Box(t.theme.Box, r, lines))
	f.SetString(r.X+2, r.Y, t.theme.BoxTitle.Render("|session|"))
	return nil
}
