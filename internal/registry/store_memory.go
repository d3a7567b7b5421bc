package registry

import (
	"context"
	"sync"

	id "provenia/pkg/domain"
	"provenia/pkg/platform/sentinel"
)

// InMemoryStore is the party directory for tests and single-node dev runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	parties map[id.PartyID]*Party
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{parties: make(map[id.PartyID]*Party)}
}

func (s *InMemoryStore) Create(_ context.Context, party *Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parties[party.ID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	copied := *party
	s.parties[party.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, partyID id.PartyID) (*Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	party, ok := s.parties[partyID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *party
	return &copied, nil
}
