package registry

import (
	"strings"
	"time"

	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
)

// Party is an addressable account that can hold and receive assets.
type Party struct {
	ID        id.PartyID `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewParty validates invariants and constructs a Party.
func NewParty(partyID id.PartyID, name, email string, now time.Time) (*Party, error) {
	name = strings.TrimSpace(name)
	if partyID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "party id is required")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "party name is required")
	}
	return &Party{ID: partyID, Name: name, Email: email, Active: true, CreatedAt: now}, nil
}
