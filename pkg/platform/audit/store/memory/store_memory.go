package memory

import (
	"context"
	"sync"

	id "provenia/pkg/domain"
	audit "provenia/pkg/platform/audit"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	events map[id.TransferID][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[id.TransferID][]audit.Event)}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[id.TransferID][]audit.Event)
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.TransferID] = append(s.events[event.TransferID], event)
	return nil
}

func (s *InMemoryStore) ListByTransfer(_ context.Context, transferID id.TransferID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[transferID]...), nil
}

// ListAll returns all audit events across all transfers (admin-only operation).
func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var allEvents []audit.Event
	for _, transferEvents := range s.events {
		allEvents = append(allEvents, transferEvents...)
	}
	return allEvents, nil
}
