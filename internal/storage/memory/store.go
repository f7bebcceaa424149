// Package memory holds the process-local incident repository. Contents live
// exactly as long as the owning process: nothing survives a restart, and two
// instances sharing no store never see each other's writes. Concurrent
// updates to the same incident are last-writer-wins for the whole record.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"guardiant/internal/domain"
	"guardiant/pkg/e"
)

type Store struct {
	mu        sync.RWMutex
	incidents map[string]*domain.Incident
	seq       map[string]int
	nextSeq   int
}

func NewStore() *Store {
	return &Store{
		incidents: make(map[string]*domain.Incident),
		seq:       make(map[string]int),
	}
}

func (s *Store) Create(ctx context.Context, incident *domain.Incident) error {
	const op = "memory.Store.Create"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.incidents[incident.IncidentID]; exists {
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	cp := *incident
	s.incidents[incident.IncidentID] = &cp
	s.seq[incident.IncidentID] = s.nextSeq
	s.nextSeq++
	return nil
}

func (s *Store) Update(ctx context.Context, incident *domain.Incident) error {
	const op = "memory.Store.Update"

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.incidents[incident.IncidentID]
	if !ok {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	cp := *incident
	// The creation timestamp is immutable whatever the caller sent.
	cp.Timestamp = stored.Timestamp
	s.incidents[incident.IncidentID] = &cp
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Incident, error) {
	const op = "memory.Store.Get"

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.incidents[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	cp := *stored
	return &cp, nil
}

// List returns the filtered set sorted newest first, sliced by
// [offset, offset+limit). total is the filtered count before pagination.
// Timestamp ties keep insertion order.
func (s *Store) List(ctx context.Context, userID string, limit, offset int) ([]*domain.Incident, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*domain.Incident, 0, len(s.incidents))
	for _, inc := range s.incidents {
		if userID != "" && inc.UserID != userID {
			continue
		}
		filtered = append(filtered, inc)
	}

	sort.Slice(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return s.seq[a.IncidentID] < s.seq[b.IncidentID]
	})

	total := int64(len(filtered))

	if offset >= len(filtered) {
		return []*domain.Incident{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	page := make([]*domain.Incident, 0, end-offset)
	for _, inc := range filtered[offset:end] {
		cp := *inc
		page = append(page, &cp)
	}
	return page, total, nil
}

// Counts reports the total and shared record counts for the stats endpoint.
func (s *Store) Counts(ctx context.Context) (total, shared int64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inc := range s.incidents {
		total++
		if inc.Status == domain.IncidentShared {
			shared++
		}
	}
	return total, shared, nil
}
