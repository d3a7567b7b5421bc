package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "provenia/pkg/domain-errors"
)

// Typed identifiers. Distinct types keep asset, party, and transfer IDs from
// being swapped at call sites; the compiler enforces what code review can't.

// PartyID identifies an account holder (initiator or recipient of a transfer).
type PartyID uuid.UUID

// AssetID identifies a registered asset (e.g. a device serial registration).
type AssetID string

// TransferID identifies one transfer attempt. Unique per attempt: wall-clock
// nanos plus a random suffix.
type TransferID string

// ParsePartyID validates and converts a raw string into a PartyID.
// IDs must be valid, non-empty, non-nil UUIDs.
func ParsePartyID(raw string) (PartyID, error) {
	u, err := parseUUID(raw, "party id")
	if err != nil {
		return PartyID(uuid.Nil), err
	}
	return PartyID(u), nil
}

// ParseAssetID validates a raw asset identifier.
func ParseAssetID(raw string) (AssetID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "asset id is required")
	}
	return AssetID(raw), nil
}

// NewTransferID generates a fresh transfer identifier.
func NewTransferID(now time.Time) TransferID {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return TransferID(fmt.Sprintf("TRX-%d-%s", now.UnixNano(), hex.EncodeToString(suffix)))
}

// ParseTransferID validates a raw transfer identifier.
func ParseTransferID(raw string) (TransferID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "TRX-") {
		return "", dErrors.New(dErrors.CodeInvalidInput, "transfer id is required and must start with TRX-")
	}
	return TransferID(raw), nil
}

func (id PartyID) String() string { return uuid.UUID(id).String() }
func (id PartyID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the party ID as its canonical UUID string in JSON.
func (id PartyID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

// UnmarshalText parses a party ID from its canonical UUID string. Unlike
// ParsePartyID it accepts the nil UUID: records such as a genesis ownership
// entry legitimately carry a zero sender, and they must survive a decode
// round trip. Request inputs stay strict through ParsePartyID and Validate.
func (id *PartyID) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(strings.TrimSpace(string(text)))
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "party id must be a valid UUID")
	}
	*id = PartyID(parsed)
	return nil
}
func (id AssetID) String() string    { return string(id) }
func (id TransferID) String() string { return string(id) }

func parseUUID(raw, what string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" is required")
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" must not be the nil UUID")
	}
	return u, nil
}
