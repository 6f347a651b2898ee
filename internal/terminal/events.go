package terminal

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/elysium/internal/keybind"
	"github.com/muurk/elysium/internal/tui"
)

// Messages sent to the program by the Renderer methods.
type (
	frameMsg   string
	suspendMsg struct{}
	clearMsg   struct{}
)

// Next implements tui.EventSource. Input is returned in arrival order; when
// none is pending the wait is bounded by the tick and frame intervals.
// Once the program has stopped Next reports EventQuit.
func (t *Terminal) Next(ctx context.Context) (tui.Event, error) {
	for {
		if ev, ok := t.pop(); ok {
			return ev, nil
		}
		select {
		case <-ctx.Done():
			return tui.Event{}, ctx.Err()
		case <-t.notify:
		case <-t.done:
			if ev, ok := t.pop(); ok {
				return ev, nil
			}
			return tui.Event{Kind: tui.EventQuit}, nil
		case <-t.tick.C:
			return tui.Event{Kind: tui.EventTick}, nil
		case <-t.frame.C:
			return tui.Event{Kind: tui.EventRender}, nil
		}
	}
}

// model is the bubbletea side of the terminal. It turns terminal messages
// into tui events and shows whatever frame it was sent last.
type model struct {
	forward func(tui.Event)
	view    string
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.view = string(msg)
	case suspendMsg:
		return m, tea.Suspend
	case clearMsg:
		return m, tea.ClearScreen
	case tea.ResumeMsg:
		m.forward(tui.Event{Kind: tui.EventResume})
	case tea.WindowSizeMsg:
		m.forward(tui.Event{Kind: tui.EventResize, Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		if ev, ok := keyEvent(msg); ok {
			m.forward(ev)
		}
	case tea.MouseMsg:
		if ev, ok := mouseEvent(msg); ok {
			m.forward(ev)
		}
	}
	return m, nil
}

func (m *model) View() string { return m.view }

// keyEvent converts a key press. The key string bubbletea reports, such as
// "ctrl+c", "shift+tab" or "G", is already in keybind form.
func keyEvent(msg tea.KeyMsg) (tui.Event, bool) {
	k, err := keybind.ParseKey(msg.String())
	if err != nil {
		return tui.Event{}, false
	}
	return tui.Event{Kind: tui.EventKey, Key: k, Msg: msg}, true
}

func mouseEvent(msg tea.MouseMsg) (tui.Event, bool) {
	var button tui.MouseButton
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		button = tui.MouseWheelUp
	case msg.Button == tea.MouseButtonWheelDown:
		button = tui.MouseWheelDown
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		button = tui.MouseLeft
	default:
		return tui.Event{}, false
	}
	return tui.Event{Kind: tui.EventMouse, Mouse: button, Msg: msg}, true
}
