package liststate

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"

	"github.com/muurk/elysium/internal/fleet"
)

// PageSize is the step used by PageUp and PageDown.
const PageSize = 5

// MatchMode selects how the filter string is compared with cells.
type MatchMode int

const (
	// Substring keeps rows where any cell contains the filter, ignoring case.
	Substring MatchMode = iota
	// Fuzzy keeps rows where any cell contains the filter characters in order.
	Fuzzy
)

// ListState is a selectable, scrollable, filterable view over rows.
//
// The filtered view is recomputed on Load and Filter. Selection indexes the
// filtered view and stays within [0, Len()) while the view is non-empty; it
// is 0 when the view is empty. Navigation wraps at both ends.
type ListState struct {
	rows     fleet.Rows
	view     []int // indexes into rows
	filter   string
	mode     MatchMode
	selected int
	offset   int

	fold func(string) string
}

// New returns an empty ListState using mode for filtering.
func New(mode MatchMode) *ListState {
	caser := cases.Fold()
	return &ListState{mode: mode, fold: caser.String}
}

// Load replaces the row set, resets selection and scroll, and recomputes the
// view with the current filter.
func (l *ListState) Load(rows fleet.Rows) {
	l.rows = rows
	l.selected = 0
	l.offset = 0
	l.apply()
}

// Filter sets the filter substring and recomputes the view. An empty string
// shows every row. The selection is clamped into the new view.
func (l *ListState) Filter(s string) {
	l.filter = s
	l.apply()
}

// FilterText returns the active filter string.
func (l *ListState) FilterText() string { return l.filter }

func (l *ListState) apply() {
	if l.fold == nil {
		l.fold = strings.ToLower
	}
	l.view = l.view[:0]
	needle := l.fold(l.filter)
	for i, row := range l.rows {
		if l.filter == "" || l.matches(row, needle) {
			l.view = append(l.view, i)
		}
	}
	l.clamp()
}

func (l *ListState) matches(row fleet.Row, needle string) bool {
	for _, c := range row {
		switch l.mode {
		case Fuzzy:
			if fuzzy.MatchNormalizedFold(needle, c) {
				return true
			}
		default:
			if strings.Contains(l.fold(c), needle) {
				return true
			}
		}
	}
	return false
}

func (l *ListState) clamp() {
	n := len(l.view)
	if n == 0 {
		l.selected = 0
		l.offset = 0
		return
	}
	if l.selected >= n {
		l.selected = n - 1
	}
	if l.offset >= n {
		l.offset = n - 1
	}
}

// Next moves the selection down by n rows. Moving past the last row
// continues from the first.
func (l *ListState) Next(n int) {
	size := len(l.view)
	if size == 0 || n <= 0 {
		return
	}
	l.selected = (l.selected + n%size) % size
}

// Previous moves the selection up by n rows. Moving before the first row
// continues from the last.
func (l *ListState) Previous(n int) {
	size := len(l.view)
	if size == 0 || n <= 0 {
		return
	}
	step := n % size
	if step > l.selected {
		l.selected = size - (step - l.selected)
	} else {
		l.selected -= step
	}
}

// First selects the first row of the view.
func (l *ListState) First() {
	l.selected = 0
}

// Last selects the last row of the view.
func (l *ListState) Last() {
	if n := len(l.view); n > 0 {
		l.selected = n - 1
	}
}

// Selected returns the selection index within the filtered view.
func (l *ListState) Selected() int { return l.selected }

// SelectedRow returns the selected row, or false when the view is empty.
func (l *ListState) SelectedRow() (fleet.Row, bool) {
	if len(l.view) == 0 {
		return nil, false
	}
	return l.rows[l.view[l.selected]], true
}

// Len returns the number of rows in the filtered view.
func (l *ListState) Len() int { return len(l.view) }

// Total returns the number of loaded rows, ignoring the filter.
func (l *ListState) Total() int { return len(l.rows) }

// Offset returns the index of the first visible row.
func (l *ListState) Offset() int { return l.offset }

// Rows returns the filtered view.
func (l *ListState) Rows() fleet.Rows {
	out := make(fleet.Rows, len(l.view))
	for i, idx := range l.view {
		out[i] = l.rows[idx]
	}
	return out
}

// Visible scrolls so that the selection is inside a window of height rows
// and returns that window.
func (l *ListState) Visible(height int) fleet.Rows {
	if height <= 0 || len(l.view) == 0 {
		return nil
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+height {
		l.offset = l.selected - height + 1
	}
	if maxOffset := len(l.view) - height; maxOffset < 0 {
		l.offset = 0
	} else if l.offset > maxOffset {
		l.offset = maxOffset
	}

	end := min(l.offset+height, len(l.view))
	out := make(fleet.Rows, 0, end-l.offset)
	for _, idx := range l.view[l.offset:end] {
		out = append(out, l.rows[idx])
	}
	return out
}
