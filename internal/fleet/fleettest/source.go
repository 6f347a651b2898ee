// Package fleettest provides an in-memory fleet.DataSource for tests.
package fleettest

import (
	"context"
	"sync"

	"github.com/muurk/elysium/internal/fleet"
)

// Source is a fleet.DataSource backed by maps.
//
// Load copies Next into the live snapshot. When Gate is non-nil, Load blocks
// until a value is received from it or ctx is done, which lets tests hold a
// refresh in flight.
type Source struct {
	mu sync.Mutex

	// Next is the dataset published by the following Load.
	Next map[fleet.Category]fleet.Rows
	// Err, when set, is returned by Load instead of publishing Next.
	Err error
	// Gate blocks Load until it yields.
	Gate chan struct{}

	live  map[fleet.Category]fleet.Rows
	loads int
}

// New returns a Source whose first Load publishes data.
func New(data map[fleet.Category]fleet.Rows) *Source {
	return &Source{Next: data, live: map[fleet.Category]fleet.Rows{}}
}

// Load implements fleet.DataSource.
func (s *Source) Load(ctx context.Context) error {
	s.mu.Lock()
	gate := s.Gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.Err != nil {
		return s.Err
	}
	live := make(map[fleet.Category]fleet.Rows, len(s.Next))
	for c, rows := range s.Next {
		live[c] = rows.Clone()
	}
	s.live = live
	return nil
}

// Snapshot implements fleet.DataSource.
func (s *Source) Snapshot(c fleet.Category) fleet.Rows {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live[c]
}

// Loads returns how many times Load ran to completion or failure.
func (s *Source) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

// SetGate installs or clears the gate.
func (s *Source) SetGate(gate chan struct{}) {
	s.mu.Lock()
	s.Gate = gate
	s.mu.Unlock()
}

// SetErr sets the error returned by subsequent loads.
func (s *Source) SetErr(err error) {
	s.mu.Lock()
	s.Err = err
	s.mu.Unlock()
}

// Sample returns a small dataset covering every category.
func Sample() map[fleet.Category]fleet.Rows {
	return map[fleet.Category]fleet.Rows{
		fleet.CoreDevices: {
			{"core-alpha", "HEALTHY", "2024-05-01T10:00:00Z"},
			{"core-beta", "UNHEALTHY", "2024-05-01T11:00:00Z"},
			{"core-gamma", "HEALTHY", "2024-05-02T09:30:00Z"},
		},
		fleet.ThingGroups: {
			{"line-1", "arn:aws:iot:eu-west-1:123456789012:thinggroup/line-1"},
		},
		fleet.Deployments: {},
	}
}
