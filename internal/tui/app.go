package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/elysium/internal/action"
	"github.com/muurk/elysium/internal/keybind"
	"github.com/muurk/elysium/internal/logging"
)

// DefaultShutdownGrace bounds how long Run waits for components to stop.
const DefaultShutdownGrace = 2 * time.Second

// Options configures an App.
type Options struct {
	// Bindings maps keys to actions. Nil means keybind.Default().
	Bindings *keybind.Bindings
	// ShutdownGrace bounds component shutdown. Zero means
	// DefaultShutdownGrace.
	ShutdownGrace time.Duration
	// ExportDir receives state exports. Empty means the working directory.
	ExportDir string
}

// App runs the event loop: it waits for one terminal event, turns it into
// actions, drains the action queue through every component, and renders when
// a Render action comes through.
//
// All component calls happen on the goroutine that called Run.
type App struct {
	renderer   Renderer
	events     EventSource
	components []Component
	bindings   *keybind.Bindings
	queue      *Queue

	grace     time.Duration
	exportDir string
	now       func() time.Time

	mode          action.Mode
	shouldQuit    bool
	shouldSuspend bool
	suspended     bool
	postExitErr   string
}

// NewApp wires the components to a terminal.
func NewApp(renderer Renderer, events EventSource, components []Component, opts Options) *App {
	if opts.Bindings == nil {
		opts.Bindings = keybind.Default()
	}
	if opts.ShutdownGrace <= 0 {
		opts.ShutdownGrace = DefaultShutdownGrace
	}
	return &App{
		renderer:   renderer,
		events:     events,
		components: components,
		bindings:   opts.Bindings,
		queue:      NewQueue(),
		grace:      opts.ShutdownGrace,
		exportDir:  opts.ExportDir,
		now:        time.Now,
	}
}

// Sender returns the action queue.
func (a *App) Sender() Sender { return a.queue }

// Mode returns the current input mode.
func (a *App) Mode() action.Mode { return a.mode }

// PostExitError returns the message of the Error action that ended the
// session, or "" after a normal quit.
func (a *App) PostExitError() string { return a.postExitErr }

// Run enters the terminal, runs the loop until a Quit or Error action, and
// restores the terminal. Cancelling ctx quits as well.
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.renderer.Enter(); err != nil {
		return fmt.Errorf("failed to enter terminal: %w", err)
	}
	defer func() {
		if exitErr := a.renderer.Exit(); exitErr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", exitErr)
		}
		a.shutdown()
	}()

	if err := a.start(); err != nil {
		return err
	}

	for !a.shouldQuit {
		ev, err := a.events.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logging.Info("Event loop cancelled", zap.Error(ctx.Err()))
				return nil
			}
			return fmt.Errorf("failed to read terminal event: %w", err)
		}
		a.Step(ev)
	}
	return nil
}

func (a *App) start() error {
	for _, c := range a.components {
		if r, ok := c.(ActionHandlerRegistrar); ok {
			if err := r.RegisterActionHandler(a.queue); err != nil {
				return fmt.Errorf("failed to register action handler: %w", err)
			}
		}
	}
	w, h := a.renderer.Size()
	for _, c := range a.components {
		if i, ok := c.(Initializer); ok {
			if err := i.Init(Size{Width: w, Height: h}); err != nil {
				return fmt.Errorf("failed to initialize component: %w", err)
			}
		}
	}
	return nil
}

// Step processes one event: translation, event handlers, then a full drain
// of the queue. Run calls it once per event; tests call it directly.
func (a *App) Step(ev Event) {
	a.translate(ev)
	a.dispatchEvent(ev)
	a.drain()

	if a.shouldSuspend && !a.suspended {
		if err := a.renderer.Suspend(); err != nil {
			logging.Warn("Failed to suspend", zap.Error(err))
		}
		a.suspended = true
	}
}

func (a *App) translate(ev Event) {
	switch ev.Kind {
	case EventQuit:
		a.queue.Send(action.New(action.Quit))
	case EventTick:
		a.queue.Send(action.New(action.Tick))
	case EventRender:
		a.queue.Send(action.New(action.Render))
	case EventResize:
		a.queue.Send(action.NewResize(ev.Width, ev.Height))
	case EventResume:
		a.queue.Send(action.New(action.Resume))
		a.queue.Send(action.New(action.ClearScreen))
	case EventKey:
		if act, ok := a.bindings.Lookup(a.mode, ev.Key); ok {
			a.queue.Send(act)
		}
	}
}

func (a *App) dispatchEvent(ev Event) {
	for _, c := range a.components {
		h, ok := c.(EventHandler)
		if !ok {
			continue
		}
		act, err := h.HandleEvent(ev)
		if err != nil {
			a.queue.Send(action.NewError(err.Error()))
			continue
		}
		a.queue.Send(act)
	}
}

func (a *App) drain() {
	for {
		act, ok := a.queue.Pop()
		if !ok {
			return
		}
		if act.Kind != action.Tick && act.Kind != action.Render {
			logging.LogAction(act.Kind.String(), act.String())
		}

		a.apply(act)

		for _, c := range a.components {
			next, err := c.Update(act)
			if err != nil {
				a.queue.Send(action.NewError(err.Error()))
				continue
			}
			a.queue.Send(next)
		}
	}
}

// apply performs the App's own effect of an action. Components still see
// every action afterwards.
func (a *App) apply(act action.Action) {
	switch act.Kind {
	case action.ModeChange:
		a.mode = act.Mode
	case action.Error:
		logging.Error("Session ended on error", zap.String("message", act.Message))
		a.postExitErr = act.Message
		a.shouldQuit = true
	case action.Quit:
		a.shouldQuit = true
	case action.Suspend:
		a.shouldSuspend = true
	case action.Resume:
		a.shouldSuspend = false
		a.suspended = false
	case action.ClearScreen:
		if err := a.renderer.Clear(); err != nil {
			logging.Warn("Failed to clear screen", zap.Error(err))
		}
	case action.Resize:
		if err := a.renderer.Resize(act.Width, act.Height); err != nil {
			logging.Warn("Failed to resize", zap.Error(err))
		}
		a.render()
	case action.Render:
		a.render()
	case action.Export:
		a.queue.Send(action.NewNotice(a.export()))
	}
}

func (a *App) render() {
	var failures []error
	err := a.renderer.Draw(func(f *Frame) {
		area := f.Area()
		for _, c := range a.components {
			if err := drawSafe(c, f, area); err != nil {
				failures = append(failures, err)
			}
		}
	})
	if err != nil {
		failures = append(failures, err)
	}
	for _, err := range failures {
		a.queue.Send(action.NewError(fmt.Sprintf("Failed to draw: %v", err)))
	}
}

func drawSafe(c Component, f *Frame, area Rect) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Draw(f, area)
}

// shutdown gives every Shutdowner the grace period to stop.
func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.grace)
	defer cancel()

	for _, c := range a.components {
		s, ok := c.(Shutdowner)
		if !ok {
			continue
		}
		if err := s.Shutdown(ctx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				logging.Warn("Component did not stop within the shutdown grace",
					zap.Duration("grace", a.grace))
				continue
			}
			logging.Warn("Component shutdown failed", zap.Error(err))
		}
	}
}
