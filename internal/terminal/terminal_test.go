package terminal

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/elysium/internal/keybind"
	"github.com/muurk/elysium/internal/tui"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want keybind.Key
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, keybind.Key{Code: "q"}},
		{"upper", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, keybind.Key{Code: "G"}},
		{"ctrl", tea.KeyMsg{Type: tea.KeyCtrlC}, keybind.Key{Code: "c", Mods: keybind.ModCtrl}},
		{"named", tea.KeyMsg{Type: tea.KeyPgDown}, keybind.Key{Code: "pgdown"}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, keybind.Key{Code: "esc"}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, keybind.Key{Code: " "}},
		{"alt", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, keybind.Key{Code: "x", Mods: keybind.ModAlt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := keyEvent(tt.msg)
			if !ok {
				t.Fatalf("keyEvent(%q) dropped the key", tt.msg.String())
			}
			if ev.Kind != tui.EventKey || ev.Key != tt.want {
				t.Errorf("keyEvent(%q) = %v %+v, want key %+v", tt.msg.String(), ev.Kind, ev.Key, tt.want)
			}
			if _, ok := ev.Msg.(tea.KeyMsg); !ok {
				t.Error("the raw message should travel with the event")
			}
		})
	}
}

func TestMouseEvent(t *testing.T) {
	tests := []struct {
		msg  tea.MouseMsg
		want tui.MouseButton
		ok   bool
	}{
		{tea.MouseMsg{Button: tea.MouseButtonWheelUp}, tui.MouseWheelUp, true},
		{tea.MouseMsg{Button: tea.MouseButtonWheelDown}, tui.MouseWheelDown, true},
		{tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, tui.MouseLeft, true},
		{tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, tui.MouseNone, false},
		{tea.MouseMsg{Action: tea.MouseActionMotion}, tui.MouseNone, false},
	}
	for _, tt := range tests {
		ev, ok := mouseEvent(tt.msg)
		if ok != tt.ok || ev.Mouse != tt.want {
			t.Errorf("mouseEvent(%+v) = %v, %v; want %v, %v", tt.msg, ev.Mouse, ok, tt.want, tt.ok)
		}
	}
}

func TestModelForwardsInput(t *testing.T) {
	var got []tui.Event
	m := &model{forward: func(ev tui.Event) { got = append(got, ev) }}

	m.Update(tea.WindowSizeMsg{Width: 90, Height: 33})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m.Update(tea.ResumeMsg{})
	m.Update(frameMsg("frame one"))

	if len(got) != 3 {
		t.Fatalf("forwarded %d events, want 3", len(got))
	}
	if got[0].Kind != tui.EventResize || got[0].Width != 90 || got[0].Height != 33 {
		t.Errorf("first event = %+v", got[0])
	}
	if got[1].Kind != tui.EventKey || got[1].Key.Code != "j" {
		t.Errorf("second event = %+v", got[1])
	}
	if got[2].Kind != tui.EventResume {
		t.Errorf("third event = %+v", got[2])
	}
	if m.View() != "frame one" {
		t.Errorf("View() = %q", m.View())
	}
}

func TestModelCommands(t *testing.T) {
	m := &model{forward: func(tui.Event) {}}

	if _, cmd := m.Update(suspendMsg{}); cmd == nil {
		t.Error("suspend should return a command")
	} else if _, ok := cmd().(tea.SuspendMsg); !ok {
		t.Error("suspend should return tea.Suspend")
	}
	if _, cmd := m.Update(clearMsg{}); cmd == nil {
		t.Error("clear should return a command")
	}
}

func newClockedTerminal(tick, frame time.Duration) *Terminal {
	tm := New(Options{TickRate: tick, FrameInterval: frame})
	tm.startClock()
	return tm
}

func TestNextOrder(t *testing.T) {
	tm := newClockedTerminal(time.Hour, time.Hour)
	defer tm.tick.Stop()
	defer tm.frame.Stop()

	tm.push(tui.KeyEvent("a"))
	tm.push(tui.KeyEvent("b"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for _, want := range []string{"a", "b"} {
		ev, err := tm.Next(ctx)
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if ev.Key.Code != want {
			t.Errorf("Next() = %q, want %q", ev.Key.Code, want)
		}
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		tm.push(tui.KeyEvent("c"))
	}()
	ev, err := tm.Next(ctx)
	if err != nil || ev.Key.Code != "c" {
		t.Errorf("Next() = %+v, %v; want the late key", ev, err)
	}
}

func TestNextTicks(t *testing.T) {
	tm := newClockedTerminal(5*time.Millisecond, time.Hour)
	defer tm.tick.Stop()
	defer tm.frame.Stop()

	ev, err := tm.Next(context.Background())
	if err != nil || ev.Kind != tui.EventTick {
		t.Errorf("Next() = %v, %v; want tick", ev.Kind, err)
	}
}

func TestNextCancel(t *testing.T) {
	tm := newClockedTerminal(time.Hour, time.Hour)
	defer tm.tick.Stop()
	defer tm.frame.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := tm.Next(ctx); err != context.Canceled {
		t.Errorf("Next() error = %v, want context.Canceled", err)
	}
}

func TestNextAfterProgramStops(t *testing.T) {
	tm := newClockedTerminal(time.Hour, time.Hour)
	defer tm.tick.Stop()
	defer tm.frame.Stop()

	tm.push(tui.KeyEvent("z"))
	close(tm.done)

	ev, _ := tm.Next(context.Background())
	if ev.Key.Code != "z" {
		t.Errorf("pending input should be delivered first, got %+v", ev)
	}
	ev, _ = tm.Next(context.Background())
	if ev.Kind != tui.EventQuit {
		t.Errorf("Next() = %v, want quit", ev.Kind)
	}
}

func TestRendererRequiresEnter(t *testing.T) {
	tm := New(Options{})
	if err := tm.Draw(func(*tui.Frame) {}); err == nil {
		t.Error("Draw() before Enter should fail")
	}
	if err := tm.Exit(); err != nil {
		t.Errorf("Exit() before Enter = %v", err)
	}

	if err := tm.Resize(40, 12); err != nil {
		t.Fatal(err)
	}
	if w, h := tm.Size(); w != 40 || h != 12 {
		t.Errorf("Size() = %d, %d", w, h)
	}
}

func TestProgramRoundTrip(t *testing.T) {
	tm := New(Options{
		TickRate:      time.Hour,
		FrameInterval: time.Hour,
		Input:         strings.NewReader("k"),
		Output:        io.Discard,
	})
	if err := tm.Enter(); err != nil {
		t.Fatalf("Enter() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var key tui.Event
	for key.Kind != tui.EventKey {
		ev, err := tm.Next(ctx)
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if ev.Kind == tui.EventQuit {
			t.Fatal("program stopped before reporting the key")
		}
		key = ev
	}
	if key.Key.Code != "k" {
		t.Errorf("key = %+v, want k", key.Key)
	}

	if err := tm.Draw(func(f *tui.Frame) { f.SetString(0, 0, "hello") }); err != nil {
		t.Errorf("Draw() error = %v", err)
	}
	if err := tm.Exit(); err != nil {
		t.Errorf("Exit() error = %v", err)
	}
}
