package ledger

import (
	"context"
	"sync"

	id "provenia/pkg/domain"
	"provenia/pkg/platform/sentinel"
)

// InMemoryStore is the ledger of record for tests and single-node dev runs.
// One mutex guards both the history map and the block counter; the
// current-holder check and the append happen under the same critical section,
// which is what makes the double-transfer race impossible here.
type InMemoryStore struct {
	mu        sync.RWMutex
	histories map[id.AssetID][]OwnershipRecord
	nextBlock uint64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{histories: make(map[id.AssetID][]OwnershipRecord), nextBlock: 1}
}

func (s *InMemoryStore) RegisterAsset(_ context.Context, assetID id.AssetID, owner id.PartyID, network string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.histories[assetID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	genesis := OwnershipRecord{
		AssetID: assetID,
		To:      owner,
		Network: network,
		Block:   s.nextBlock,
	}
	s.nextBlock++
	s.histories[assetID] = []OwnershipRecord{genesis}
	return nil
}

func (s *InMemoryStore) OwnerOf(_ context.Context, assetID id.AssetID) (id.PartyID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history, ok := s.histories[assetID]
	if !ok || len(history) == 0 {
		return id.PartyID{}, sentinel.ErrNotFound
	}
	return history[len(history)-1].To, nil
}

func (s *InMemoryStore) Append(_ context.Context, record OwnershipRecord) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history, ok := s.histories[record.AssetID]
	if !ok || len(history) == 0 {
		return 0, sentinel.ErrNotFound
	}
	if history[len(history)-1].To != record.From {
		return 0, sentinel.ErrConflict
	}
	record.Block = s.nextBlock
	s.nextBlock++
	s.histories[record.AssetID] = append(history, record)
	return record.Block, nil
}

func (s *InMemoryStore) History(_ context.Context, assetID id.AssetID) ([]OwnershipRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history, ok := s.histories[assetID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return append([]OwnershipRecord{}, history...), nil
}
