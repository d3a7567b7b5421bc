package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	id "provenia/pkg/domain"
)

// Window remembers recent settlements keyed by (asset, from, to) so a
// retried request inside the window returns the original record instead of
// settling twice.
type Window interface {
	// Remember stores the record under the key unless one is already present.
	// Returns the stored record and true when a prior record won the race.
	Remember(ctx context.Context, key string, record *SettlementRecord, ttl time.Duration) (*SettlementRecord, bool, error)
	// Lookup returns the remembered record for the key, if any.
	Lookup(ctx context.Context, key string) (*SettlementRecord, bool, error)
}

// WindowKey builds the idempotency key for a settlement attempt.
func WindowKey(assetID id.AssetID, from, to id.PartyID) string {
	return fmt.Sprintf("settle:%s:%s:%s", assetID, from, to)
}

// MemoryWindow is the in-process fallback used when Redis is not configured.
type MemoryWindow struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   func() time.Time
}

type memoryEntry struct {
	record    *SettlementRecord
	expiresAt time.Time
}

func NewMemoryWindow() *MemoryWindow {
	return &MemoryWindow{entries: make(map[string]memoryEntry), clock: time.Now}
}

func (w *MemoryWindow) Remember(_ context.Context, key string, record *SettlementRecord, ttl time.Duration) (*SettlementRecord, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := w.clock()
	if entry, ok := w.entries[key]; ok && now.Before(entry.expiresAt) {
		return entry.record, true, nil
	}
	w.entries[key] = memoryEntry{record: record, expiresAt: now.Add(ttl)}
	return record, false, nil
}

func (w *MemoryWindow) Lookup(_ context.Context, key string) (*SettlementRecord, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	entry, ok := w.entries[key]
	if !ok || w.clock().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.record, true, nil
}

// RedisWindow tracks the idempotency window in Redis so retries hitting a
// different engine instance still deduplicate. SET NX settles the race; the
// loser reads back the winner's record.
type RedisWindow struct {
	client *goredis.Client
}

func NewRedisWindow(client *goredis.Client) *RedisWindow {
	return &RedisWindow{client: client}
}

func (w *RedisWindow) Remember(ctx context.Context, key string, record *SettlementRecord, ttl time.Duration) (*SettlementRecord, bool, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, false, fmt.Errorf("marshal settlement record: %w", err)
	}
	set, err := w.client.SetNX(ctx, key, payload, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("remember settlement: %w", err)
	}
	if set {
		return record, false, nil
	}
	prior, ok, err := w.Lookup(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		// Key expired between SETNX and GET; treat as a fresh remember.
		return w.Remember(ctx, key, record, ttl)
	}
	return prior, true, nil
}

func (w *RedisWindow) Lookup(ctx context.Context, key string) (*SettlementRecord, bool, error) {
	payload, err := w.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lookup settlement: %w", err)
	}
	var record SettlementRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, false, fmt.Errorf("unmarshal settlement record: %w", err)
	}
	return &record, true, nil
}
