package fleet

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Row is one resource rendered as an ordered list of cells. Its length
// matches the Headers of the category it belongs to.
type Row []string

// Rows is the row set of one category.
type Rows []Row

// Clone returns a deep copy, so callers can keep rows while the source
// replaces its snapshot.
func (r Rows) Clone() Rows {
	if r == nil {
		return nil
	}
	out := make(Rows, len(r))
	for i, row := range r {
		out[i] = append(Row(nil), row...)
	}
	return out
}

// SortByName orders rows ascending by their first cell, case-insensitively.
// Ties keep their original order.
func SortByName(rows Rows) {
	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(cell(rows[i], 0)) < strings.ToLower(cell(rows[j], 0))
	})
}

func cell(r Row, i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

// DataSource is the remote fleet API as seen by the dashboard.
//
// Load re-fetches every category, replacing the previous snapshots. Snapshot
// returns the last loaded rows of one category and never performs I/O.
// Implementations are not required to be safe for concurrent use; wrap them
// in a Shared.
type DataSource interface {
	Load(ctx context.Context) error
	Snapshot(c Category) Rows
}

// Shared serialises access to a DataSource between the refresh goroutine
// and the render path.
//
// The source lock is held for the whole of Load, so the event loop uses
// TrySnapshot while a refresh may be in flight. Load statistics sit behind a
// separate lock and are always cheap to read.
type Shared struct {
	mu  sync.Mutex
	src DataSource

	statsMu    sync.Mutex
	loads      int
	lastLoaded time.Time
}

// NewShared wraps src.
func NewShared(src DataSource) *Shared {
	return &Shared{src: src}
}

// Load holds the lock for the full remote fetch.
func (s *Shared) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.src.Load(ctx); err != nil {
		return err
	}

	s.statsMu.Lock()
	s.loads++
	s.lastLoaded = time.Now()
	s.statsMu.Unlock()
	return nil
}

// Snapshot copies the rows of c out under the lock.
func (s *Shared) Snapshot(c Category) Rows {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Snapshot(c).Clone()
}

// TrySnapshot is Snapshot without waiting. It reports false when a Load
// currently holds the lock.
func (s *Shared) TrySnapshot(c Category) (Rows, bool) {
	if !s.mu.TryLock() {
		return nil, false
	}
	defer s.mu.Unlock()
	return s.src.Snapshot(c).Clone(), true
}

// Stats returns the number of successful loads and the time of the last one.
func (s *Shared) Stats() (loads int, last time.Time) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return s.loads, s.lastLoaded
}
