package tui

import (
	"context"

	"github.com/muurk/elysium/internal/keybind"
)

// EventKind identifies a terminal event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventMouse
	EventResize
	EventTick
	EventRender
	EventResume
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventTick:
		return "tick"
	case EventRender:
		return "render"
	case EventResume:
		return "resume"
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}

// MouseButton is the mouse input carried by an EventMouse.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseWheelUp
	MouseWheelDown
	MouseLeft
)

// Event is one input from the terminal.
type Event struct {
	Kind EventKind

	// Key is set for EventKey.
	Key keybind.Key
	// Mouse is set for EventMouse.
	Mouse MouseButton
	// Width and Height are set for EventResize.
	Width, Height int

	// Msg is the terminal library's own message for the event, for widgets
	// that decode input themselves. It may be nil.
	Msg any
}

// KeyEvent builds an EventKey from a key string such as "ctrl+c".
func KeyEvent(s string) Event {
	return Event{Kind: EventKey, Key: keybind.MustParseKey(s)}
}

// EventSource yields terminal events. Next blocks until an event is
// available or ctx is done.
type EventSource interface {
	Next(ctx context.Context) (Event, error)
}

// Renderer owns the terminal.
type Renderer interface {
	// Enter switches to raw mode and the alternate screen.
	Enter() error
	// Exit restores the terminal.
	Exit() error
	// Suspend hands the terminal back to the shell until the process is
	// resumed, which arrives as EventResume.
	Suspend() error
	Clear() error
	Resize(width, height int) error
	Size() (width, height int)
	// Draw builds a frame of the current size, lets fn fill it and
	// displays it.
	Draw(fn func(f *Frame)) error
}
