package audit

import (
	"context"

	id "provenia/pkg/domain"
)

// Store is the append-only persistence contract for audit events.
// Entries are keyed by transfer ID and never mutated after the fact.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByTransfer(ctx context.Context, transferID id.TransferID) ([]Event, error)
}
