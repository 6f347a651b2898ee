package tui

import (
	"context"

	"github.com/muurk/elysium/internal/action"
)

// Component is one independently drawn part of the dashboard.
//
// Update receives every action drained from the queue, in order, and may
// return one follow-up action (action.None for nothing). Draw renders into
// the shared frame; area is the whole screen and the component picks its own
// region with Split.
type Component interface {
	Update(a action.Action) (action.Action, error)
	Draw(f *Frame, area Rect) error
}

// Sender accepts actions for the next drain. Send never blocks and is safe
// for concurrent use.
type Sender interface {
	Send(a action.Action)
}

// Size is the terminal size in cells.
type Size struct {
	Width, Height int
}

// The interfaces below are optional capabilities. The App checks for each
// one on every component.

// ActionHandlerRegistrar receives the queue sender before Init, for
// components that emit actions from background work.
type ActionHandlerRegistrar interface {
	RegisterActionHandler(s Sender) error
}

// Initializer runs once before the first event, with the initial size.
type Initializer interface {
	Init(size Size) error
}

// EventHandler sees raw terminal events before key bindings are applied.
type EventHandler interface {
	HandleEvent(ev Event) (action.Action, error)
}

// Reporter exposes component state for export.
type Reporter interface {
	Report() Report
}

// Shutdowner releases background work when the App exits. ctx carries the
// shutdown grace deadline.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Report is one component's section of an export.
type Report struct {
	Name  string `yaml:"name"`
	State any    `yaml:"state"`
}
