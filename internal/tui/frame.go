package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether r has no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Inner shrinks r by one cell on each side, the area inside a border.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, Width: max(r.Width-2, 0), Height: max(r.Height-2, 0)}
}

// Frame is one screen of styled text that components compose into.
// Lines may contain ANSI styling; geometry is measured in cells.
type Frame struct {
	width, height int
	lines         []string
}

// NewFrame returns a blank frame.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return &Frame{width: width, height: height, lines: lines}
}

// Area is the full frame.
func (f *Frame) Area() Rect { return Rect{Width: f.width, Height: f.height} }

// SetString overlays a single line of text at (x, y), clipped to the frame.
// Cells left and right of the text keep their content.
func (f *Frame) SetString(x, y int, s string) {
	if y < 0 || y >= f.height || x >= f.width {
		return
	}
	if x < 0 {
		s = ansi.Cut(s, -x, ansi.StringWidth(s))
		x = 0
	}
	w := min(ansi.StringWidth(s), f.width-x)
	if w <= 0 {
		return
	}
	f.overlay(y, x, w, s)
}

// Render overlays a multi-line block into r. Each line is padded or cut to
// r.Width, so the block replaces what was underneath; lines beyond r.Height
// are dropped.
func (f *Frame) Render(r Rect, block string) {
	if r.Empty() {
		return
	}
	x, w := r.X, r.Width
	if x < 0 {
		w += x
		x = 0
	}
	w = min(w, f.width-x)
	if w <= 0 {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		y := r.Y + i
		if i >= r.Height || y >= f.height {
			break
		}
		if y < 0 {
			continue
		}
		if n := ansi.StringWidth(line); n < w {
			line += strings.Repeat(" ", w-n)
		}
		f.overlay(y, x, w, line)
	}
}

func (f *Frame) overlay(y, x, w int, fg string) {
	bg := f.lines[y]
	left := ansi.Cut(bg, 0, x)
	right := ansi.Cut(bg, x+w, f.width)
	f.lines[y] = left + ansi.Cut(fg, 0, w) + right
}

// Line returns row y.
func (f *Frame) Line(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	return f.lines[y]
}

// String joins the rows.
func (f *Frame) String() string {
	return strings.Join(f.lines, "\n")
}

// Box renders lines inside style's border so that the result is exactly
// r.Width by r.Height cells. Content that does not fit is cut.
func Box(style lipgloss.Style, r Rect, lines []string) string {
	inner := r.Inner()
	if inner.Width <= 0 || inner.Height <= 0 {
		return ""
	}
	if len(lines) > inner.Height {
		lines = lines[:inner.Height]
	}
	clipped := make([]string, len(lines))
	for i, l := range lines {
		clipped[i] = ansi.Truncate(l, inner.Width, "")
	}
	return style.
		Width(inner.Width).
		Height(inner.Height).
		Render(strings.Join(clipped, "\n"))
}
