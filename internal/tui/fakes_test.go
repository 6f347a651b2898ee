package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/muurk/elysium/internal/action"
)

type fakeRenderer struct {
	width, height int

	entered, exited int
	suspends        int
	clears          int
	draws           int
	resized         []Size
	last            *Frame
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{width: 80, height: 24}
}

func (r *fakeRenderer) Enter() error   { r.entered++; return nil }
func (r *fakeRenderer) Exit() error    { r.exited++; return nil }
func (r *fakeRenderer) Suspend() error { r.suspends++; return nil }
func (r *fakeRenderer) Clear() error   { r.clears++; return nil }

func (r *fakeRenderer) Resize(width, height int) error {
	r.width, r.height = width, height
	r.resized = append(r.resized, Size{Width: width, Height: height})
	return nil
}

func (r *fakeRenderer) Size() (int, int) { return r.width, r.height }

func (r *fakeRenderer) Draw(fn func(f *Frame)) error {
	r.draws++
	f := NewFrame(r.width, r.height)
	fn(f)
	r.last = f
	return nil
}

// scriptedEvents replays events, then reports EventQuit forever.
type scriptedEvents struct {
	mu     sync.Mutex
	events []Event
}

func (s *scriptedEvents) Next(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return Event{Kind: EventQuit}, nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

// blockingEvents never yields until ctx is done.
type blockingEvents struct{}

func (blockingEvents) Next(ctx context.Context) (Event, error) {
	<-ctx.Done()
	return Event{}, ctx.Err()
}

// recorder logs every action it sees and replies according to its table.
type recorder struct {
	name    string
	seen    []action.Action
	replies map[action.Kind]action.Action
	drawErr error
	panics  bool

	sender   Sender
	initSize Size
	calls    []string
}

func (r *recorder) Update(a action.Action) (action.Action, error) {
	r.seen = append(r.seen, a)
	return r.replies[a.Kind], nil
}

func (r *recorder) Draw(f *Frame, area Rect) error {
	if r.panics {
		panic("boom")
	}
	if r.drawErr != nil {
		return r.drawErr
	}
	f.SetString(0, 0, r.name)
	return nil
}

func (r *recorder) kinds() []action.Kind {
	out := make([]action.Kind, len(r.seen))
	for i, a := range r.seen {
		out[i] = a.Kind
	}
	return out
}

// lifecycle adds every optional capability to a recorder.
type lifecycle struct {
	recorder
	eventReply action.Action
	eventErr   error
	stopped    chan struct{}
	hang       bool
}

func (l *lifecycle) RegisterActionHandler(s Sender) error {
	l.calls = append(l.calls, "register")
	l.sender = s
	return nil
}

func (l *lifecycle) Init(size Size) error {
	l.calls = append(l.calls, "init")
	l.initSize = size
	return nil
}

func (l *lifecycle) HandleEvent(ev Event) (action.Action, error) {
	if ev.Kind != EventKey {
		return action.Action{}, nil
	}
	return l.eventReply, l.eventErr
}

func (l *lifecycle) Report() Report {
	return Report{Name: l.name, State: map[string]int{"seen": len(l.seen)}}
}

func (l *lifecycle) Shutdown(ctx context.Context) error {
	l.calls = append(l.calls, "shutdown")
	if l.hang {
		<-ctx.Done()
		return ctx.Err()
	}
	if l.stopped != nil {
		close(l.stopped)
	}
	return nil
}

var errDraw = errors.New("cannot draw")
