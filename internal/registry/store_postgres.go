package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	id "provenia/pkg/domain"
	"provenia/pkg/platform/sentinel"
)

// PostgresStore persists the party directory in PostgreSQL.
//
// Schema:
//
//	CREATE TABLE parties (
//	    id         UUID PRIMARY KEY,
//	    name       TEXT NOT NULL,
//	    email      TEXT NOT NULL DEFAULT '',
//	    active     BOOLEAN NOT NULL DEFAULT TRUE,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, party *Party) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO parties (id, name, email, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, party.ID.String(), party.Name, party.Email, party.Active, party.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("create party: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, partyID id.PartyID) (*Party, error) {
	var (
		party Party
		raw   string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, active, created_at
		FROM parties
		WHERE id = $1
	`, partyID.String()).Scan(&raw, &party.Name, &party.Email, &party.Active, &party.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find party: %w", err)
	}
	party.ID = partyID
	return &party, nil
}
