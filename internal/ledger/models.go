package ledger

import (
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/sha3"

	id "provenia/pkg/domain"
)

// SettlementStatus is the ledger's view of a settlement write.
// Only StatusConfirmed counts as success for the transfer pipeline.
type SettlementStatus string

const (
	StatusPending   SettlementStatus = "pending"
	StatusConfirmed SettlementStatus = "confirmed"
	StatusFailed    SettlementStatus = "failed"
)

// OwnershipRecord is one entry in an asset's append-only ownership history.
// The genesis record has a nil From party.
type OwnershipRecord struct {
	AssetID    id.AssetID    `json:"asset_id"`
	From       id.PartyID    `json:"from"`
	To         id.PartyID    `json:"to"`
	Network    string        `json:"network"`
	Block      uint64        `json:"block"`
	RecordedAt time.Time     `json:"recorded_at"`
	TransferID id.TransferID `json:"transfer_id,omitempty"`
}

// SettlementRecord is the metadata returned to the orchestrator after an
// ownership change has been durably recorded.
type SettlementRecord struct {
	Hash          string           `json:"hash"`
	AssetID       id.AssetID       `json:"asset_id"`
	From          id.PartyID       `json:"from"`
	To            id.PartyID       `json:"to"`
	Network       string           `json:"network"`
	Block         uint64           `json:"block"`
	Timestamp     time.Time        `json:"timestamp"`
	Fee           int64            `json:"fee"` // minor units
	Confirmations int              `json:"confirmations"`
	Status        SettlementStatus `json:"status"`
}

// settlementHash derives a content-addressed hash for a settlement, using
// SHA3-256 to match ledger conventions. Two settlements of the same
// ownership change at different blocks hash differently; a replay within
// the idempotency window returns the original record and therefore the
// original hash.
func settlementHash(assetID id.AssetID, from, to id.PartyID, network string, block uint64, at time.Time) string {
	sum := sha3.Sum256(fmt.Appendf(nil, "%s|%s|%s|%s|%d|%d",
		assetID, from, to, network, block, at.UnixNano()))
	return hex.EncodeToString(sum[:])
}
