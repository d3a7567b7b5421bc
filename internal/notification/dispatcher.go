// Package notification fans transfer confirmations out across requested
// channels. Channel failures are recorded per channel and never abort the
// transfer; from the caller's perspective no send is fire-and-forget.
package notification

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"provenia/internal/transfer/models"
	id "provenia/pkg/domain"
)

// Message is one transfer confirmation to deliver.
type Message struct {
	TransferID id.TransferID   `json:"transfer_id"`
	AssetID    id.AssetID      `json:"asset_id"`
	FromParty  id.PartyID      `json:"from_party"`
	ToParty    id.PartyID      `json:"to_party"`
	Category   models.Category `json:"category"`
	Summary    string          `json:"summary"`
}

// Sender delivers a message on one channel.
type Sender interface {
	Send(ctx context.Context, channel models.NotificationChannel, msg Message) error
}

// Dispatcher routes each requested channel to its sender. Channels without a
// registered sender fall back to the default sender.
type Dispatcher struct {
	senders  map[models.NotificationChannel]Sender
	fallback Sender
	logger   *slog.Logger
	clock    func() time.Time
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithSender registers a sender for a channel.
func WithSender(channel models.NotificationChannel, sender Sender) Option {
	return func(d *Dispatcher) { d.senders[channel] = sender }
}

// WithLogger sets a logger for dispatch reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithClock sets the clock function for testability.
func WithClock(clock func() time.Time) Option {
	return func(d *Dispatcher) {
		if clock != nil {
			d.clock = clock
		}
	}
}

// NewDispatcher constructs a dispatcher. The fallback sender handles any
// channel without a dedicated registration.
func NewDispatcher(fallback Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		senders:  make(map[models.NotificationChannel]Sender),
		fallback: fallback,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Dispatch sends msg on every requested channel in parallel and returns one
// outcome per channel, in request order. All sends complete (or are recorded
// as failed) before Dispatch returns.
func (d *Dispatcher) Dispatch(ctx context.Context, channels []models.NotificationChannel, msg Message) []models.NotificationOutcome {
	outcomes := make([]models.NotificationOutcome, len(channels))

	g, gctx := errgroup.WithContext(ctx)
	for i, channel := range channels {
		g.Go(func() error {
			sender, ok := d.senders[channel]
			if !ok {
				sender = d.fallback
			}

			outcome := models.NotificationOutcome{
				Channel:     channel,
				AttemptedAt: d.clock().UTC(),
			}
			if err := sender.Send(gctx, channel, msg); err != nil {
				outcome.Delivered = false
				outcome.Detail = err.Error()
				d.logger.WarnContext(gctx, "notification delivery failed",
					"channel", channel, "transfer_id", msg.TransferID, "error", err)
			} else {
				outcome.Delivered = true
			}
			outcomes[i] = outcome
			// Delivery failures are recorded, not propagated; only a nil
			// error keeps the group from cancelling sibling sends.
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}
