package ledger

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
	"provenia/pkg/platform/sentinel"
)

// Network fee and confirmation profiles. Settlement fees are flat per
// network; confirmation counts mirror what each network reports once a
// write is final.
var networkProfiles = map[string]struct {
	Fee           int64
	Confirmations int
}{
	"mainnet":    {Fee: 250, Confirmations: 12},
	"testnet":    {Fee: 0, Confirmations: 6},
	"private":    {Fee: 50, Confirmations: 1},
	"consortium": {Fee: 100, Confirmations: 3},
}

const defaultFee = 100
const defaultConfirmations = 1

// Service records ownership changes on the ledger of record.
//
// Two guarantees live here, not in the orchestrator:
//   - at most one in-flight settlement per asset (keyed mutex; the store's
//     current-holder check is the cross-instance backstop), and
//   - retry-window idempotency per (asset, from, to).
type Service struct {
	store  Store
	window Window
	ttl    time.Duration
	logger *slog.Logger
	clock  func() time.Time

	mu    sync.Mutex
	locks map[id.AssetID]*sync.Mutex
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a logger for settlement reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithWindow sets the idempotency window implementation.
func WithWindow(window Window) Option {
	return func(s *Service) { s.window = window }
}

// WithWindowTTL sets how long a settlement stays replay-protected.
func WithWindowTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithServiceClock sets the clock function for testability.
func WithServiceClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs the settlement service.
func NewService(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("ledger store is required")
	}
	s := &Service{
		store: store,
		ttl:   2 * time.Minute,
		clock: time.Now,
		locks: make(map[id.AssetID]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.window == nil {
		s.window = NewMemoryWindow()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}

// OwnerOf exposes the ledger's current-holder lookup for verifiers.
func (s *Service) OwnerOf(ctx context.Context, assetID id.AssetID) (id.PartyID, error) {
	return s.store.OwnerOf(ctx, assetID)
}

// RegisterAsset seeds the genesis ownership record for a new asset.
func (s *Service) RegisterAsset(ctx context.Context, assetID id.AssetID, owner id.PartyID, network string) error {
	if err := s.store.RegisterAsset(ctx, assetID, owner, network); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return dErrors.New(dErrors.CodeConflict, "asset is already registered")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to register asset")
	}
	return nil
}

// History returns an asset's ownership history.
func (s *Service) History(ctx context.Context, assetID id.AssetID) ([]OwnershipRecord, error) {
	history, err := s.store.History(ctx, assetID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "asset is not registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read ledger history")
	}
	return history, nil
}

// Settle durably records the ownership change and returns settlement
// metadata. A repeat call for the same (asset, from, to) inside the
// idempotency window returns the original record.
func (s *Service) Settle(ctx context.Context, transferID id.TransferID, assetID id.AssetID, from, to id.PartyID, network string) (*SettlementRecord, error) {
	// Serialize per asset first so the window check and the append are one
	// atomic step from this instance's point of view.
	lock := s.assetLock(assetID)
	lock.Lock()
	defer lock.Unlock()

	key := WindowKey(assetID, from, to)
	if prior, ok, err := s.window.Lookup(ctx, key); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "idempotency window unavailable")
	} else if ok {
		s.logger.InfoContext(ctx, "settlement replay suppressed",
			"asset_id", assetID, "transfer_id", transferID, "hash", prior.Hash)
		return prior, nil
	}

	now := s.clock().UTC()
	block, err := s.store.Append(ctx, OwnershipRecord{
		AssetID:    assetID,
		From:       from,
		To:         to,
		Network:    network,
		RecordedAt: now,
		TransferID: transferID,
	})
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "asset is not registered on the ledger")
		case errors.Is(err, sentinel.ErrConflict):
			return nil, dErrors.New(dErrors.CodeConflict, "initiator no longer holds the asset")
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "ledger write failed")
		}
	}

	profile, ok := networkProfiles[network]
	if !ok {
		profile.Fee = defaultFee
		profile.Confirmations = defaultConfirmations
	}

	record := &SettlementRecord{
		Hash:          settlementHash(assetID, from, to, network, block, now),
		AssetID:       assetID,
		From:          from,
		To:            to,
		Network:       network,
		Block:         block,
		Timestamp:     now,
		Fee:           profile.Fee,
		Confirmations: profile.Confirmations,
		Status:        StatusConfirmed,
	}

	if _, _, err := s.window.Remember(ctx, key, record, s.ttl); err != nil {
		// The settlement is already durable; losing the window only weakens
		// replay protection. Log and carry on.
		s.logger.WarnContext(ctx, "failed to record idempotency window",
			"asset_id", assetID, "transfer_id", transferID, "error", err)
	}

	s.logger.InfoContext(ctx, "settlement recorded",
		"asset_id", assetID, "transfer_id", transferID,
		"block", block, "network", network, "hash", record.Hash)
	return record, nil
}

func (s *Service) assetLock(assetID id.AssetID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[assetID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[assetID] = lock
	}
	return lock
}
