package ledger

import (
	"context"

	id "provenia/pkg/domain"
)

// Store is the ledger of record: the authoritative, append-only ownership
// history per asset. Implementations must reject an append whose From party
// is not the current holder (sentinel.ErrConflict) so that a concurrent
// double-transfer can never produce two valid settlements.
type Store interface {
	// RegisterAsset writes the genesis ownership record for a new asset.
	// Returns sentinel.ErrAlreadyUsed if the asset is already registered.
	RegisterAsset(ctx context.Context, assetID id.AssetID, owner id.PartyID, network string) error

	// OwnerOf returns the current holder of the asset.
	// Returns sentinel.ErrNotFound for unregistered assets.
	OwnerOf(ctx context.Context, assetID id.AssetID) (id.PartyID, error)

	// Append records an ownership change and returns the assigned block
	// (sequence) number. Returns sentinel.ErrConflict when record.From does
	// not match the current holder at write time.
	Append(ctx context.Context, record OwnershipRecord) (uint64, error)

	// History returns the full ownership history for an asset, oldest first.
	History(ctx context.Context, assetID id.AssetID) ([]OwnershipRecord, error)
}
