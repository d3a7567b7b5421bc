package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	id "provenia/pkg/domain"
	"provenia/pkg/platform/sentinel"
)

// PostgresStore persists the ledger of record in PostgreSQL.
//
// Schema:
//
//	CREATE TABLE asset_ledger (
//	    block       BIGSERIAL PRIMARY KEY,
//	    asset_id    TEXT NOT NULL,
//	    from_party  UUID,
//	    to_party    UUID NOT NULL,
//	    network     TEXT NOT NULL,
//	    transfer_id TEXT,
//	    recorded_at TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX asset_ledger_asset_idx ON asset_ledger (asset_id, block);
//
//	CREATE TABLE asset_owners (
//	    asset_id   TEXT PRIMARY KEY,
//	    owner      UUID NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL
//	);
//
// The current-holder row is locked FOR UPDATE for the duration of an append,
// so two settlements for the same asset serialize at the database even when
// multiple engine instances run against it.
type PostgresStore struct {
	db    *sql.DB
	clock func() time.Time
}

// PostgresStoreOption configures a PostgresStore instance.
type PostgresStoreOption func(*PostgresStore)

// WithClock sets the clock function for testability.
func WithClock(clock func() time.Time) PostgresStoreOption {
	return func(s *PostgresStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewPostgresStore constructs a PostgreSQL-backed ledger store.
func NewPostgresStore(db *sql.DB, opts ...PostgresStoreOption) *PostgresStore {
	s := &PostgresStore{db: db, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *PostgresStore) RegisterAsset(ctx context.Context, assetID id.AssetID, owner id.PartyID, network string) error {
	now := s.clock().UTC()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin register: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO asset_owners (asset_id, owner, updated_at) VALUES ($1, $2, $3)`,
		assetID.String(), owner.String(), now,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("register asset: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO asset_ledger (asset_id, to_party, network, recorded_at) VALUES ($1, $2, $3, $4)`,
		assetID.String(), owner.String(), network, now,
	)
	if err != nil {
		return fmt.Errorf("write genesis record: %w", err)
	}
	return tx.Commit()
}

func (s *PostgresStore) OwnerOf(ctx context.Context, assetID id.AssetID) (id.PartyID, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT owner FROM asset_owners WHERE asset_id = $1`, assetID.String(),
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return id.PartyID{}, sentinel.ErrNotFound
		}
		return id.PartyID{}, fmt.Errorf("query owner: %w", err)
	}
	return id.ParsePartyID(raw)
}

func (s *PostgresStore) Append(ctx context.Context, record OwnershipRecord) (uint64, error) {
	now := s.clock().UTC()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	var rawOwner string
	err = tx.QueryRowContext(ctx,
		`SELECT owner FROM asset_owners WHERE asset_id = $1 FOR UPDATE`,
		record.AssetID.String(),
	).Scan(&rawOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, sentinel.ErrNotFound
		}
		return 0, fmt.Errorf("lock current owner: %w", err)
	}
	if rawOwner != record.From.String() {
		return 0, sentinel.ErrConflict
	}

	var block uint64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO asset_ledger (asset_id, from_party, to_party, network, transfer_id, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING block
	`, record.AssetID.String(), record.From.String(), record.To.String(),
		record.Network, record.TransferID.String(), now,
	).Scan(&block)
	if err != nil {
		return 0, fmt.Errorf("append ownership record: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE asset_owners SET owner = $1, updated_at = $2 WHERE asset_id = $3`,
		record.To.String(), now, record.AssetID.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("update current owner: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit append: %w", err)
	}
	return block, nil
}

func (s *PostgresStore) History(ctx context.Context, assetID id.AssetID) ([]OwnershipRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT block, from_party, to_party, network, transfer_id, recorded_at
		FROM asset_ledger
		WHERE asset_id = $1
		ORDER BY block
	`, assetID.String())
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var history []OwnershipRecord
	for rows.Next() {
		var (
			rec        OwnershipRecord
			fromParty  sql.NullString
			transferID sql.NullString
			toParty    string
		)
		rec.AssetID = assetID
		if err := rows.Scan(&rec.Block, &fromParty, &toParty, &rec.Network, &transferID, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if to, err := id.ParsePartyID(toParty); err == nil {
			rec.To = to
		}
		if fromParty.Valid {
			if from, err := id.ParsePartyID(fromParty.String); err == nil {
				rec.From = from
			}
		}
		if transferID.Valid {
			rec.TransferID = id.TransferID(transferID.String)
		}
		history = append(history, rec)
	}
	if len(history) == 0 {
		return nil, sentinel.ErrNotFound
	}
	return history, rows.Err()
}
