//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "provenia/pkg/domain"
	audit "provenia/pkg/platform/audit"
	"provenia/pkg/platform/audit/store/postgres"
	"provenia/pkg/platform/tx"
	"provenia/pkg/testutil/containers"
)

const auditSchema = `
CREATE TABLE IF NOT EXISTS audit_events (
    seq         BIGSERIAL PRIMARY KEY,
    transfer_id TEXT        NOT NULL,
    asset_id    TEXT        NOT NULL,
    actor_id    UUID,
    category    TEXT        NOT NULL,
    action      TEXT        NOT NULL,
    details     TEXT        NOT NULL DEFAULT '',
    risk_score  INT         NOT NULL DEFAULT 0,
    request_id  TEXT        NOT NULL DEFAULT '',
    occurred_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS audit_events_transfer_idx ON audit_events (transfer_id, seq);
`

type AuditPostgresSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
}

func TestAuditPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AuditPostgresSuite))
}

func (s *AuditPostgresSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(s.postgres.ApplySchema(context.Background(), auditSchema))
	s.store = postgres.New(s.postgres.DB)
}

func (s *AuditPostgresSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "audit_events"))
}

func (s *AuditPostgresSuite) event(transferID id.TransferID, action audit.AuditEvent) audit.Event {
	return audit.Event{
		TransferID: transferID,
		AssetID:    id.AssetID("laptop-1"),
		ActorID:    id.PartyID(uuid.New()),
		Action:     string(action),
		Details:    "details",
		RiskScore:  35,
		RequestID:  "req-1",
		Timestamp:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *AuditPostgresSuite) TestAppendAndList() {
	ctx := context.Background()
	transferID := id.NewTransferID(time.Now())

	first := s.event(transferID, audit.EventTransferInitiated)
	second := s.event(transferID, audit.EventSettlementRecorded)
	s.Require().NoError(s.store.Append(ctx, first))
	s.Require().NoError(s.store.Append(ctx, second))
	s.Require().NoError(s.store.Append(ctx, s.event(id.NewTransferID(time.Now()), audit.EventTransferInitiated)))

	events, err := s.store.ListByTransfer(ctx, transferID)
	s.Require().NoError(err)
	s.Require().Len(events, 2, "other transfers stay out of the trail")

	s.Equal(string(audit.EventTransferInitiated), events[0].Action)
	s.Equal(string(audit.EventSettlementRecorded), events[1].Action)
	s.Equal(audit.CategoryCompliance, events[0].Category)
	s.Equal(first.ActorID, events[0].ActorID)
	s.Equal(35, events[0].RiskScore)
	s.Equal("req-1", events[0].RequestID)
}

func (s *AuditPostgresSuite) TestEmptyTrail() {
	events, err := s.store.ListByTransfer(context.Background(), id.NewTransferID(time.Now()))
	s.Require().NoError(err)
	s.Empty(events)
}

func (s *AuditPostgresSuite) TestAppendJoinsAmbientTransaction() {
	ctx := context.Background()
	transferID := id.NewTransferID(time.Now())

	dbTx, err := s.postgres.DB.BeginTx(ctx, nil)
	s.Require().NoError(err)

	err = s.store.Append(tx.WithTx(ctx, dbTx), s.event(transferID, audit.EventTransferFailed))
	s.Require().NoError(err)
	s.Require().NoError(dbTx.Rollback())

	events, err := s.store.ListByTransfer(ctx, transferID)
	s.Require().NoError(err)
	s.Empty(events, "a rolled-back operation leaves no trail entry")
}
