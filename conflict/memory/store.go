// memory based resolution store for testing and single-process callers
package memory

import (
	"context"
	"sync"

	"github.com/samber/mo"

	"github.com/halden/schedkit/conflict"
)

// Store implements conflict.ResolutionStore using an in-memory map.
type Store struct {
	mu          sync.RWMutex
	resolutions map[string]conflict.Resolution
}

// New creates a new in-memory resolution store.
func New() *Store {
	return &Store{resolutions: make(map[string]conflict.Resolution)}
}

func (s *Store) Get(_ context.Context, conflictID string) (mo.Option[conflict.Resolution], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.resolutions[conflictID]
	if !ok {
		return mo.None[conflict.Resolution](), nil
	}
	return mo.Some(res), nil
}

func (s *Store) Accept(_ context.Context, res conflict.Resolution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolutions[res.ConflictID] = res
	return nil
}

func (s *Store) Remove(_ context.Context, conflictID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.resolutions, conflictID)
	return nil
}

// Sweep drops every resolution whose conflict id is not in live. Callers
// run it after a fresh detection pass so that acceptances for deleted or
// rescheduled events (superseded conflicts) do not linger. Returns how many
// records were removed.
func (s *Store) Sweep(_ context.Context, live map[string]struct{}) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id := range s.resolutions {
		if _, ok := live[id]; !ok {
			delete(s.resolutions, id)
			removed++
		}
	}
	return removed
}

// Len reports how many resolutions are currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.resolutions)
}
