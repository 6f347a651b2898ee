package terminal

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/elysium/internal/logging"
	"github.com/muurk/elysium/internal/tui"
	"github.com/muurk/elysium/internal/ui"
)

// exitTimeout bounds how long Exit waits for the program to restore the
// terminal.
const exitTimeout = 2 * time.Second

// Options configures a Terminal.
type Options struct {
	// TickRate is the interval between EventTick events.
	TickRate time.Duration
	// FrameInterval is the interval between EventRender events.
	FrameInterval time.Duration
	// Mouse enables mouse cell motion reporting.
	Mouse bool

	// Input and Output replace stdin and stdout when set.
	Input  io.Reader
	Output io.Writer
}

// Terminal drives the screen through a bubbletea program. It implements
// both tui.Renderer and tui.EventSource.
//
// The program only forwards input and displays the last frame it was sent;
// all dashboard state lives on the tui.App side.
type Terminal struct {
	opts Options

	program *tea.Program
	done    chan struct{}
	runErr  error

	mu            sync.Mutex
	width, height int
	pending       []tui.Event
	notify        chan struct{}

	tick  *time.Ticker
	frame *time.Ticker
}

// New returns a Terminal sized to the current screen. Nothing is drawn until
// Enter.
func New(opts Options) *Terminal {
	if opts.TickRate <= 0 {
		opts.TickRate = time.Second
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 100 * time.Millisecond
	}
	w, h := ui.GetTerminalSize()
	return &Terminal{
		opts:   opts,
		width:  w,
		height: h,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Enter starts the program on the alternate screen.
func (t *Terminal) Enter() error {
	if t.program != nil {
		return errors.New("terminal already entered")
	}

	options := []tea.ProgramOption{tea.WithAltScreen()}
	if t.opts.Mouse {
		options = append(options, tea.WithMouseCellMotion())
	}
	if t.opts.Input != nil {
		options = append(options, tea.WithInput(t.opts.Input))
	}
	if t.opts.Output != nil {
		options = append(options, tea.WithOutput(t.opts.Output))
	}
	t.program = tea.NewProgram(&model{forward: t.push}, options...)

	go func() {
		defer close(t.done)
		if _, err := t.program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			t.runErr = err
			logging.Error("Terminal program stopped", zap.Error(err))
		}
	}()

	t.startClock()
	return nil
}

func (t *Terminal) startClock() {
	t.tick = time.NewTicker(t.opts.TickRate)
	t.frame = time.NewTicker(t.opts.FrameInterval)
}

// Exit stops the program, which leaves the alternate screen and restores the
// terminal mode.
func (t *Terminal) Exit() error {
	if t.tick != nil {
		t.tick.Stop()
		t.frame.Stop()
	}
	if t.program == nil {
		return nil
	}
	t.program.Quit()

	select {
	case <-t.done:
	case <-time.After(exitTimeout):
		t.program.Kill()
		<-t.done
	}
	if t.runErr != nil {
		return fmt.Errorf("terminal: %w", t.runErr)
	}
	return nil
}

// Suspend implements tui.Renderer.
func (t *Terminal) Suspend() error { return t.send(suspendMsg{}) }

// Clear implements tui.Renderer.
func (t *Terminal) Clear() error { return t.send(clearMsg{}) }

// Resize implements tui.Renderer.
func (t *Terminal) Resize(width, height int) error {
	t.mu.Lock()
	t.width, t.height = width, height
	t.mu.Unlock()
	return nil
}

// Size implements tui.Renderer.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// Draw implements tui.Renderer.
func (t *Terminal) Draw(fn func(f *tui.Frame)) error {
	w, h := t.Size()
	f := tui.NewFrame(w, h)
	fn(f)
	return t.send(frameMsg(f.String()))
}

func (t *Terminal) send(msg tea.Msg) error {
	if t.program == nil {
		return errors.New("terminal not entered")
	}
	select {
	case <-t.done:
		return errors.New("terminal closed")
	default:
	}
	t.program.Send(msg)
	return nil
}

// push queues an event from the program goroutine. It never blocks, so the
// program keeps reading input while the loop is busy.
func (t *Terminal) push(ev tui.Event) {
	t.mu.Lock()
	t.pending = append(t.pending, ev)
	t.mu.Unlock()

	select {
	case t.notify <- struct{}{}:
	default:
	}
}

func (t *Terminal) pop() (tui.Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) == 0 {
		return tui.Event{}, false
	}
	ev := t.pending[0]
	t.pending = t.pending[1:]
	return ev, true
}
