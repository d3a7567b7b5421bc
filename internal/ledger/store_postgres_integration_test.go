//go:build integration

package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"provenia/internal/ledger"
	id "provenia/pkg/domain"
	"provenia/pkg/platform/sentinel"
	"provenia/pkg/testutil/containers"
)

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS asset_ledger (
    block       BIGSERIAL PRIMARY KEY,
    asset_id    TEXT NOT NULL,
    from_party  UUID,
    to_party    UUID NOT NULL,
    network     TEXT NOT NULL,
    transfer_id TEXT,
    recorded_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS asset_ledger_asset_idx ON asset_ledger (asset_id, block);

CREATE TABLE IF NOT EXISTS asset_owners (
    asset_id   TEXT PRIMARY KEY,
    owner      UUID NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
`

type LedgerPostgresSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *ledger.PostgresStore
}

func TestLedgerPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(LedgerPostgresSuite))
}

func (s *LedgerPostgresSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(s.postgres.ApplySchema(context.Background(), ledgerSchema))
	s.store = ledger.NewPostgresStore(s.postgres.DB)
}

func (s *LedgerPostgresSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "asset_ledger", "asset_owners"))
}

func (s *LedgerPostgresSuite) TestRegisterAndOwnerOf() {
	ctx := context.Background()
	owner := id.PartyID(uuid.New())
	assetID := id.AssetID("laptop-1")

	s.Require().NoError(s.store.RegisterAsset(ctx, assetID, owner, "mainnet"))

	got, err := s.store.OwnerOf(ctx, assetID)
	s.Require().NoError(err)
	s.Equal(owner, got)

	s.Run("duplicate registration rejected", func() {
		s.ErrorIs(s.store.RegisterAsset(ctx, assetID, owner, "mainnet"), sentinel.ErrAlreadyUsed)
	})

	s.Run("unknown asset not found", func() {
		_, err := s.store.OwnerOf(ctx, id.AssetID("ghost"))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *LedgerPostgresSuite) TestAppendEnforcesCurrentHolder() {
	ctx := context.Background()
	alice := id.PartyID(uuid.New())
	bob := id.PartyID(uuid.New())
	mallory := id.PartyID(uuid.New())
	assetID := id.AssetID("laptop-2")

	s.Require().NoError(s.store.RegisterAsset(ctx, assetID, alice, "mainnet"))

	block, err := s.store.Append(ctx, ledger.OwnershipRecord{
		AssetID:    assetID,
		From:       alice,
		To:         bob,
		Network:    "mainnet",
		TransferID: id.NewTransferID(time.Now()),
	})
	s.Require().NoError(err)
	s.Positive(block)

	s.Run("non-holder append conflicts", func() {
		_, err := s.store.Append(ctx, ledger.OwnershipRecord{
			AssetID: assetID,
			From:    mallory,
			To:      bob,
			Network: "mainnet",
		})
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("unregistered asset not found", func() {
		_, err := s.store.Append(ctx, ledger.OwnershipRecord{
			AssetID: id.AssetID("ghost"),
			From:    alice,
			To:      bob,
			Network: "mainnet",
		})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("ownership advanced to the recipient", func() {
		got, err := s.store.OwnerOf(ctx, assetID)
		s.Require().NoError(err)
		s.Equal(bob, got)
	})
}

func (s *LedgerPostgresSuite) TestHistoryOrderedByBlock() {
	ctx := context.Background()
	alice := id.PartyID(uuid.New())
	bob := id.PartyID(uuid.New())
	carol := id.PartyID(uuid.New())
	assetID := id.AssetID("laptop-3")

	s.Require().NoError(s.store.RegisterAsset(ctx, assetID, alice, "testnet"))
	_, err := s.store.Append(ctx, ledger.OwnershipRecord{AssetID: assetID, From: alice, To: bob, Network: "testnet"})
	s.Require().NoError(err)
	_, err = s.store.Append(ctx, ledger.OwnershipRecord{AssetID: assetID, From: bob, To: carol, Network: "testnet"})
	s.Require().NoError(err)

	history, err := s.store.History(ctx, assetID)
	s.Require().NoError(err)
	s.Require().Len(history, 3)

	s.Equal(alice, history[0].To, "genesis record names the first owner")
	s.Equal(bob, history[1].To)
	s.Equal(carol, history[2].To)
	s.Less(history[0].Block, history[1].Block)
	s.Less(history[1].Block, history[2].Block)

	s.Run("unknown asset not found", func() {
		_, err := s.store.History(ctx, id.AssetID("ghost"))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}
