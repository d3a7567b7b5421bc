// Package publisher emits audit events with fail-closed semantics.
//
// Emit writes synchronously to the audit store by default: if the event
// cannot be persisted, the calling operation MUST fail. An optional async
// buffer is available for operations-category noise, and an optional Kafka
// stream mirrors compliance events to downstream consumers.
package publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	id "provenia/pkg/domain"
	audit "provenia/pkg/platform/audit"
)

// Stream publishes audit events to an external broker. Satisfied by the
// platform Kafka producer.
type Stream interface {
	Publish(ctx context.Context, topic, key string, body any) error
}

// Publisher writes audit events to a store and optionally to a stream.
type Publisher struct {
	store  audit.Store
	logger *slog.Logger

	stream      Stream
	streamTopic string

	inbox chan audit.Event
	wg    sync.WaitGroup
	once  sync.Once
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a logger for error reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithAsyncBuffer enables asynchronous emission with the given buffer size.
// Async mode is best-effort; do not use it for the transfer lifecycle trio.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.inbox = make(chan audit.Event, size)
	}
}

// WithStream mirrors compliance-category events to a broker topic.
func WithStream(stream Stream, topic string) Option {
	return func(p *Publisher) {
		p.stream = stream
		p.streamTopic = topic
	}
}

// NewPublisher creates a publisher over the given store.
func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.inbox != nil {
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

// Emit records an audit event. In sync mode (the default) the caller blocks
// until persistence succeeds or fails; a returned error means the business
// operation must not proceed.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	if p.inbox != nil {
		select {
		case p.inbox <- event:
			return nil
		default:
			// Buffer full: fall through to the synchronous path rather than drop.
		}
	}
	return p.persist(ctx, event)
}

// List returns the audit trail for a transfer.
func (p *Publisher) List(ctx context.Context, transferID id.TransferID) ([]audit.Event, error) {
	return p.store.ListByTransfer(ctx, transferID)
}

// Close stops the async drain goroutine, flushing buffered events.
func (p *Publisher) Close() error {
	p.once.Do(func() {
		if p.inbox != nil {
			close(p.inbox)
			p.wg.Wait()
		}
	})
	return nil
}

func (p *Publisher) persist(ctx context.Context, event audit.Event) error {
	if err := p.store.Append(ctx, event); err != nil {
		p.logger.ErrorContext(ctx, "CRITICAL: audit persistence failed",
			"action", event.Action,
			"transfer_id", event.TransferID,
			"error", err,
		)
		return err
	}

	if p.stream != nil && event.Category == audit.CategoryCompliance {
		// The store is the source of truth; a stream failure is logged, not fatal.
		if err := p.stream.Publish(ctx, p.streamTopic, event.TransferID.String(), event); err != nil {
			p.logger.WarnContext(ctx, "audit stream publish failed",
				"action", event.Action,
				"transfer_id", event.TransferID,
				"error", err,
			)
		}
	}
	return nil
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.inbox {
		_ = p.persist(context.Background(), event)
	}
}
