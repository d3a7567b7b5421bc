// Package verify holds the pre-settlement checks of the transfer pipeline:
// ownership of the asset, addressability of the recipient, and identity
// verification of the initiator. Each check is a small service over a
// capability interface so the orchestrator can be tested with doubles.
package verify

import (
	"context"
	"errors"

	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
	"provenia/pkg/platform/sentinel"
)

// Ledger is the read side of the ledger of record.
type Ledger interface {
	OwnerOf(ctx context.Context, assetID id.AssetID) (id.PartyID, error)
}

// OwnershipVerifier confirms the initiating party currently holds the asset.
type OwnershipVerifier struct {
	ledger Ledger
}

func NewOwnershipVerifier(ledger Ledger) *OwnershipVerifier {
	return &OwnershipVerifier{ledger: ledger}
}

// VerifyOwnership returns a forbidden error when claimant is not the current
// holder, and a not-found error for unregistered assets.
func (v *OwnershipVerifier) VerifyOwnership(ctx context.Context, assetID id.AssetID, claimant id.PartyID) error {
	owner, err := v.ledger.OwnerOf(ctx, assetID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "asset is not registered on the ledger")
		}
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "ledger lookup failed")
	}
	if owner != claimant {
		return dErrors.New(dErrors.CodeForbidden, "initiating party does not hold the asset")
	}
	return nil
}
