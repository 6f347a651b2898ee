package tui

// Rows taken by the fixed parts of the screen.
const (
	titleHeight  = 1
	tabsHeight   = 3
	footerHeight = 1

	// topHeight is the tabs box plus the chart below it. The session panel
	// spans the same rows on the right.
	topHeight = 10
	// Below this many rows the chart is dropped and the top section shrinks
	// to the tabs box.
	compactHeight = 22
)

// Layout is the position of every dashboard region for one screen size.
type Layout struct {
	Title    Rect
	Tabs     Rect
	TopLeft  Rect
	TopRight Rect
	Table    Rect
	Footer   Rect
}

// Split divides area into the dashboard regions:
//
//	title                     (1 row)
//	tabs        | session     (3 rows)
//	chart       | session     (compact screens drop this)
//	table                     (the rest)
//	help                      (1 row)
func Split(area Rect) Layout {
	top := topHeight
	if area.Height < compactHeight {
		top = tabsHeight
	}
	leftW := area.Width / 2
	rightW := area.Width - leftW

	y := area.Y
	l := Layout{Title: Rect{X: area.X, Y: y, Width: area.Width, Height: min(titleHeight, area.Height)}}
	y += titleHeight

	l.Tabs = Rect{X: area.X, Y: y, Width: leftW, Height: tabsHeight}
	l.TopLeft = Rect{X: area.X, Y: y + tabsHeight, Width: leftW, Height: top - tabsHeight}
	l.TopRight = Rect{X: area.X + leftW, Y: y, Width: rightW, Height: top}
	y += top

	tableH := area.Y + area.Height - footerHeight - y
	l.Table = Rect{X: area.X, Y: y, Width: area.Width, Height: max(tableH, 0)}
	l.Footer = Rect{X: area.X, Y: area.Y + area.Height - footerHeight, Width: area.Width, Height: footerHeight}

	if area.Height <= titleHeight+footerHeight {
		l.Tabs, l.TopLeft, l.TopRight, l.Table = Rect{}, Rect{}, Rect{}, Rect{}
	}
	return l
}
