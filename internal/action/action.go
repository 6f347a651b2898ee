package action

import (
	"fmt"
	"strings"

	"github.com/muurk/elysium/internal/fleet"
)

// Kind identifies an Action variant.
type Kind int

const (
	// None is the zero Kind. Handlers return it when they have nothing to emit.
	None Kind = iota

	Tick
	Render
	Resize
	Suspend
	Resume
	Quit
	ClearScreen
	Error
	Help

	Up
	Down
	Left
	Right
	Tab
	TabChange
	ModeChange
	GraphToggle
	Clear
	DataLoaded

	Top
	Bottom
	PageUp
	PageDown
	Refresh
	Export
	Notice
)

var kindNames = map[Kind]string{
	None:        "none",
	Tick:        "tick",
	Render:      "render",
	Resize:      "resize",
	Suspend:     "suspend",
	Resume:      "resume",
	Quit:        "quit",
	ClearScreen: "clear_screen",
	Error:       "error",
	Help:        "help",
	Up:          "up",
	Down:        "down",
	Left:        "left",
	Right:       "right",
	Tab:         "tab",
	TabChange:   "tab_change",
	ModeChange:  "mode_change",
	GraphToggle: "graph_toggle",
	Clear:       "clear",
	DataLoaded:  "data_loaded",
	Top:         "top",
	Bottom:      "bottom",
	PageUp:      "page_up",
	PageDown:    "page_down",
	Refresh:     "refresh",
	Export:      "export",
	Notice:      "notice",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mode is the input interpretation state.
type Mode int

const (
	// Normal routes keys through the navigation bindings.
	Normal Mode = iota
	// Input routes keys to the filter text buffer.
	Input
)

// String returns "normal" or "input".
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Input:
		return "input"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "normal" or "input", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return Normal, nil
	case "input":
		return Input, nil
	default:
		return Normal, fmt.Errorf("unknown mode %q", s)
	}
}

// Action is a discrete event dispatched through the application queue.
//
// It is a value type: only the payload fields relevant to Kind are set, and
// two actions compare equal with == when they describe the same event.
type Action struct {
	Kind Kind

	// Width and Height are set for Resize.
	Width, Height int
	// Message is set for Error and Notice.
	Message string
	// Category is set for TabChange.
	Category fleet.Category
	// Mode is set for ModeChange.
	Mode Mode
}

// New returns a payload-free action of the given kind.
func New(k Kind) Action { return Action{Kind: k} }

// NewResize returns a Resize action.
func NewResize(width, height int) Action {
	return Action{Kind: Resize, Width: width, Height: height}
}

// NewError returns an Error action carrying msg.
func NewError(msg string) Action { return Action{Kind: Error, Message: msg} }

// NewNotice returns a Notice action carrying msg.
func NewNotice(msg string) Action { return Action{Kind: Notice, Message: msg} }

// NewTabChange returns a TabChange action targeting c.
func NewTabChange(c fleet.Category) Action { return Action{Kind: TabChange, Category: c} }

// NewModeChange returns a ModeChange action targeting m.
func NewModeChange(m Mode) Action { return Action{Kind: ModeChange, Mode: m} }

// IsZero reports whether a is the None action.
func (a Action) IsZero() bool { return a.Kind == None }

// String renders the action for logs, e.g. "mode_change(input)".
func (a Action) String() string {
	switch a.Kind {
	case Resize:
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.Width, a.Height)
	case Error, Notice:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Message)
	case TabChange:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Category.Slug())
	case ModeChange:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Mode)
	default:
		return a.Kind.String()
	}
}

// Parse converts a binding name from the configuration file into an Action.
//
// Plain kinds use their snake_case name ("quit", "page_down"). Payload-carrying
// kinds use a colon form: "mode:input", "tab:deployments". Resize, Error,
// Notice and the lifecycle kinds cannot be bound to keys.
func Parse(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if target, ok := strings.CutPrefix(name, "mode:"); ok {
		m, err := ParseMode(target)
		if err != nil {
			return Action{}, err
		}
		return NewModeChange(m), nil
	}
	if target, ok := strings.CutPrefix(name, "tab:"); ok {
		c, err := fleet.ParseCategory(target)
		if err != nil {
			return Action{}, err
		}
		return NewTabChange(c), nil
	}

	for k, n := range kindNames {
		if n != name {
			continue
		}
		if !bindable(k) {
			return Action{}, fmt.Errorf("action %q cannot be bound to a key", name)
		}
		return New(k), nil
	}
	return Action{}, fmt.Errorf("unknown action %q", name)
}

func bindable(k Kind) bool {
	switch k {
	case None, Tick, Render, Resize, Resume, Error, Notice, DataLoaded, TabChange, ModeChange:
		return false
	default:
		return true
	}
}
