package keybind

import "github.com/muurk/elysium/internal/action"

// Default returns the built-in key table.
func Default() *Bindings {
	entries := map[StateKey]action.Action{}

	registerLifecycle(entries)
	registerNavigation(entries)
	registerView(entries)

	// Leaving input mode
	entries[ExactKey(action.Input, MustParseKey("esc"))] = action.NewModeChange(action.Normal)

	return New(entries)
}

func normal(entries map[StateKey]action.Action, key string, a action.Action) {
	entries[ExactKey(action.Normal, MustParseKey(key))] = a
}

func registerLifecycle(entries map[StateKey]action.Action) {
	normal(entries, "q", action.New(action.Quit))
	normal(entries, "ctrl+d", action.New(action.Quit))
	normal(entries, "ctrl+c", action.New(action.Quit))
	normal(entries, "ctrl+z", action.New(action.Suspend))
	normal(entries, "r", action.New(action.Refresh))
	normal(entries, "e", action.New(action.Export))
	normal(entries, "?", action.New(action.Help))
}

func registerNavigation(entries map[StateKey]action.Action) {
	normal(entries, "left", action.New(action.Left))
	normal(entries, "right", action.New(action.Right))
	normal(entries, "up", action.New(action.Up))
	normal(entries, "down", action.New(action.Down))
	normal(entries, "tab", action.New(action.Tab))
	normal(entries, "home", action.New(action.Top))
	normal(entries, "end", action.New(action.Bottom))
	normal(entries, "pgup", action.New(action.PageUp))
	normal(entries, "pgdown", action.New(action.PageDown))
}

func registerView(entries map[StateKey]action.Action) {
	normal(entries, "i", action.NewModeChange(action.Input))
	normal(entries, "g", action.New(action.GraphToggle))
	normal(entries, "c", action.New(action.Clear))
}

// Description returns the help text of a bindable action.
func Description(a action.Action) string {
	switch a.Kind {
	case action.Quit:
		return "quit"
	case action.Suspend:
		return "suspend"
	case action.Refresh:
		return "refresh"
	case action.Export:
		return "export"
	case action.Help:
		return "help"
	case action.Left:
		return "prev tab"
	case action.Right:
		return "next tab"
	case action.Up:
		return "up"
	case action.Down:
		return "down"
	case action.Tab:
		return "cycle tabs"
	case action.Top:
		return "first"
	case action.Bottom:
		return "last"
	case action.PageUp:
		return "page up"
	case action.PageDown:
		return "page down"
	case action.ModeChange:
		if a.Mode == action.Input {
			return "filter"
		}
		return "done"
	case action.TabChange:
		return a.Category.Title()
	case action.GraphToggle:
		return "graph"
	case action.Clear:
		return "clear filter"
	case action.ClearScreen:
		return "redraw"
	default:
		return a.Kind.String()
	}
}
