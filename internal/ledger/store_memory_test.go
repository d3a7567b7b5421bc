package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "provenia/pkg/domain"
	"provenia/pkg/platform/sentinel"
)

type LedgerStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
	alice id.PartyID
	bob   id.PartyID
}

func (s *LedgerStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
	s.alice = id.PartyID(uuid.New())
	s.bob = id.PartyID(uuid.New())
}

func TestLedgerStoreSuite(t *testing.T) {
	suite.Run(t, new(LedgerStoreSuite))
}

// TestRegistration verifies genesis records and duplicate rejection.
func (s *LedgerStoreSuite) TestRegistration() {
	s.Run("registration seeds the genesis record", func() {
		s.Require().NoError(s.store.RegisterAsset(s.ctx, "asset-1", s.alice, "mainnet"))

		owner, err := s.store.OwnerOf(s.ctx, "asset-1")
		s.Require().NoError(err)
		s.Equal(s.alice, owner)

		history, err := s.store.History(s.ctx, "asset-1")
		s.Require().NoError(err)
		s.Require().Len(history, 1)
		s.Equal(s.alice, history[0].To)
	})

	s.Run("rejects duplicate registration", func() {
		s.Require().NoError(s.store.RegisterAsset(s.ctx, "asset-dup", s.alice, "mainnet"))
		err := s.store.RegisterAsset(s.ctx, "asset-dup", s.bob, "mainnet")
		s.Require().ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("unknown asset has no owner", func() {
		_, err := s.store.OwnerOf(s.ctx, "ghost")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestAppend verifies the current-holder check inside the critical section.
func (s *LedgerStoreSuite) TestAppend() {
	s.Run("appends when the sender holds the asset", func() {
		s.Require().NoError(s.store.RegisterAsset(s.ctx, "asset-2", s.alice, "mainnet"))

		block, err := s.store.Append(s.ctx, OwnershipRecord{
			AssetID: "asset-2", From: s.alice, To: s.bob, Network: "mainnet",
		})
		s.Require().NoError(err)
		s.Positive(block)

		owner, err := s.store.OwnerOf(s.ctx, "asset-2")
		s.Require().NoError(err)
		s.Equal(s.bob, owner)
	})

	s.Run("rejects a sender who does not hold the asset", func() {
		s.Require().NoError(s.store.RegisterAsset(s.ctx, "asset-3", s.alice, "mainnet"))

		_, err := s.store.Append(s.ctx, OwnershipRecord{
			AssetID: "asset-3", From: s.bob, To: s.alice, Network: "mainnet",
		})
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("rejects an unregistered asset", func() {
		_, err := s.store.Append(s.ctx, OwnershipRecord{
			AssetID: "ghost", From: s.alice, To: s.bob, Network: "mainnet",
		})
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("blocks increase monotonically", func() {
		s.Require().NoError(s.store.RegisterAsset(s.ctx, "asset-4", s.alice, "mainnet"))

		first, err := s.store.Append(s.ctx, OwnershipRecord{AssetID: "asset-4", From: s.alice, To: s.bob, Network: "mainnet"})
		s.Require().NoError(err)
		second, err := s.store.Append(s.ctx, OwnershipRecord{AssetID: "asset-4", From: s.bob, To: s.alice, Network: "mainnet"})
		s.Require().NoError(err)
		s.Greater(second, first)
	})

	s.Run("history copies are isolated from the store", func() {
		s.Require().NoError(s.store.RegisterAsset(s.ctx, "asset-5", s.alice, "mainnet"))
		history, err := s.store.History(s.ctx, "asset-5")
		s.Require().NoError(err)
		history[0].To = s.bob

		owner, err := s.store.OwnerOf(s.ctx, "asset-5")
		s.Require().NoError(err)
		s.Equal(s.alice, owner)
	})
}
