package verify

import (
	"context"
	"errors"

	"provenia/internal/registry"
	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
	"provenia/pkg/platform/sentinel"
)

// PartyDirectory resolves party identifiers to registered accounts.
type PartyDirectory interface {
	FindByID(ctx context.Context, partyID id.PartyID) (*registry.Party, error)
}

// RecipientValidator confirms the receiving party is a valid, addressable
// account and not the initiator itself.
type RecipientValidator struct {
	directory PartyDirectory
}

func NewRecipientValidator(directory PartyDirectory) *RecipientValidator {
	return &RecipientValidator{directory: directory}
}

func (v *RecipientValidator) ValidateRecipient(ctx context.Context, from, to id.PartyID) error {
	if from == to {
		return dErrors.New(dErrors.CodeValidation, "cannot transfer an asset to its current holder")
	}
	party, err := v.directory.FindByID(ctx, to)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "receiving party is not a registered account")
		}
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "party directory lookup failed")
	}
	if !party.Active {
		return dErrors.New(dErrors.CodeValidation, "receiving party account is deactivated")
	}
	return nil
}
