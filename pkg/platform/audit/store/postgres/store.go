package postgres

import (
	"context"
	"database/sql"
	"fmt"

	id "provenia/pkg/domain"
	audit "provenia/pkg/platform/audit"
	"provenia/pkg/platform/tx"
)

// Store implements audit.Store on PostgreSQL. Rows are append-only; there is
// deliberately no UPDATE or DELETE path in this package.
//
// Schema:
//
//	CREATE TABLE audit_events (
//	    seq         BIGSERIAL PRIMARY KEY,
//	    transfer_id TEXT        NOT NULL,
//	    asset_id    TEXT        NOT NULL,
//	    actor_id    UUID,
//	    category    TEXT        NOT NULL,
//	    action      TEXT        NOT NULL,
//	    details     TEXT        NOT NULL DEFAULT '',
//	    risk_score  INT         NOT NULL DEFAULT 0,
//	    request_id  TEXT        NOT NULL DEFAULT '',
//	    occurred_at TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX audit_events_transfer_idx ON audit_events (transfer_id, seq);
type Store struct {
	db *sql.DB
}

// New creates a new PostgreSQL audit store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append writes one audit event.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	// Always derive category from action - eventCategories map is the source of truth
	category := audit.AuditEvent(event.Action).Category()

	query := `
		INSERT INTO audit_events (transfer_id, asset_id, actor_id, category, action, details, risk_score, request_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	var actor any
	if !event.ActorID.IsNil() {
		actor = event.ActorID.String()
	}
	// An ambient transaction (if the caller opened one) carries the audit
	// write, so a rolled-back operation leaves no trail entry.
	var execer interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	} = s.db
	if ambient, ok := tx.From(ctx); ok {
		execer = ambient
	}
	_, err := execer.ExecContext(ctx, query,
		event.TransferID.String(), event.AssetID.String(), actor,
		string(category), event.Action, event.Details,
		event.RiskScore, event.RequestID, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListByTransfer returns the trail for one transfer in append order.
func (s *Store) ListByTransfer(ctx context.Context, transferID id.TransferID) ([]audit.Event, error) {
	query := `
		SELECT asset_id, actor_id, category, action, details, risk_score, request_id, occurred_at
		FROM audit_events
		WHERE transfer_id = $1
		ORDER BY seq
	`
	rows, err := s.db.QueryContext(ctx, query, transferID.String())
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			e       audit.Event
			assetID string
			actorID sql.NullString
		)
		e.TransferID = transferID
		if err := rows.Scan(&assetID, &actorID, &e.Category, &e.Action, &e.Details, &e.RiskScore, &e.RequestID, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.AssetID = id.AssetID(assetID)
		if actorID.Valid {
			if actor, err := id.ParsePartyID(actorID.String); err == nil {
				e.ActorID = actor
			}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
