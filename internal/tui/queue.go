package tui

import (
	"sync"

	"github.com/muurk/elysium/internal/action"
)

// Queue is the unbounded FIFO of pending actions shared by the App, the
// components and their background work.
type Queue struct {
	mu    sync.Mutex
	items []action.Action
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Send appends a. None actions are dropped.
func (q *Queue) Send(a action.Action) {
	if a.IsZero() {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, a)
	q.mu.Unlock()
}

// Pop removes the oldest action. It reports false when the queue is empty.
func (q *Queue) Pop() (action.Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return action.Action{}, false
	}
	a := q.items[0]
	q.items[0] = action.Action{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return a, true
}

// Len returns the number of pending actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
