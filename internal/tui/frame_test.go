package tui

import (
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/elysium/internal/action"
)

func TestFrameSetString(t *testing.T) {
	f := NewFrame(10, 2)
	f.SetString(0, 0, "abcdefghij")
	f.SetString(3, 0, "XY")
	f.SetString(8, 1, "long text")
	f.SetString(-2, 1, "__ok")
	f.SetString(0, 5, "ignored")

	if got, want := f.Line(0), "abcXYfghij"; got != want {
		t.Errorf("Line(0) = %q, want %q", got, want)
	}
	if got, want := f.Line(1), "ok      lo"; got != want {
		t.Errorf("Line(1) = %q, want %q", got, want)
	}
}

func TestFrameKeepsStylingAroundOverlay(t *testing.T) {
	f := NewFrame(12, 1)
	f.SetString(0, 0, lipgloss.NewStyle().Bold(true).Render("hello world!"))
	f.SetString(6, 0, "W")

	if got, want := ansi.Strip(f.Line(0)), "hello World!"; got != want {
		t.Errorf("Line(0) = %q, want %q", got, want)
	}
	if w := ansi.StringWidth(f.Line(0)); w != 12 {
		t.Errorf("line width = %d, want 12", w)
	}
}

func TestFrameRender(t *testing.T) {
	f := NewFrame(8, 4)
	f.Render(Rect{X: 0, Y: 0, Width: 8, Height: 4}, strings.Repeat("########\n", 4))
	f.Render(Rect{X: 2, Y: 1, Width: 4, Height: 2}, "ab\nlonger\nnever")

	want := []string{"########", "##ab  ##", "##long##", "########"}
	for y, w := range want {
		if got := f.Line(y); got != w {
			t.Errorf("Line(%d) = %q, want %q", y, got, w)
		}
	}
}

func TestBox(t *testing.T) {
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	out := Box(style, Rect{Width: 10, Height: 4}, []string{"a very long line", "b", "c", "d"})

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("Box() has %d lines, want 4:\n%s", len(lines), out)
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
	if !strings.HasPrefix(lines[1], "│a very l") {
		t.Errorf("content line = %q", lines[1])
	}
	if Box(style, Rect{Width: 2, Height: 2}, nil) != "" {
		t.Error("Box() without inner area should be empty")
	}
}

func TestSplit(t *testing.T) {
	l := Split(Rect{Width: 120, Height: 40})

	if l.Title != (Rect{Width: 120, Height: 1}) {
		t.Errorf("Title = %+v", l.Title)
	}
	if l.Tabs != (Rect{Y: 1, Width: 60, Height: 3}) {
		t.Errorf("Tabs = %+v", l.Tabs)
	}
	if l.TopLeft.Y != 4 || l.TopLeft.Height != topHeight-3 {
		t.Errorf("TopLeft = %+v", l.TopLeft)
	}
	if l.TopRight != (Rect{X: 60, Y: 1, Width: 60, Height: topHeight}) {
		t.Errorf("TopRight = %+v", l.TopRight)
	}
	if l.Footer != (Rect{Y: 39, Width: 120, Height: 1}) {
		t.Errorf("Footer = %+v", l.Footer)
	}
	if got := l.Table.Y + l.Table.Height; got != l.Footer.Y {
		t.Errorf("table ends at %d, footer starts at %d", got, l.Footer.Y)
	}

	compact := Split(Rect{Width: 80, Height: 12})
	if !compact.TopLeft.Empty() {
		t.Errorf("compact TopLeft = %+v, want empty", compact.TopLeft)
	}
	if compact.Table.Height != 12-1-3-1 {
		t.Errorf("compact Table = %+v", compact.Table)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue()
	q.Send(action.New(action.Up))
	q.Send(action.Action{})
	q.Send(action.New(action.Down))

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (None is dropped)", q.Len())
	}
	for _, want := range []action.Kind{action.Up, action.Down} {
		got, ok := q.Pop()
		if !ok || got.Kind != want {
			t.Errorf("Pop() = %v, %v; want %v", got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should report false")
	}
}

func TestQueueConcurrentSend(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Send(action.New(action.Tick))
			}
		}()
	}
	wg.Wait()
	if q.Len() != 800 {
		t.Errorf("Len() = %d, want 800", q.Len())
	}
}
