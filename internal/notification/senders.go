package notification

import (
	"context"
	"log/slog"

	"provenia/internal/transfer/models"
)

// LogSender records deliveries in the service log. It is the dev/test
// stand-in for the email, SMS, push, and in-app providers, which sit behind
// external delivery APIs.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, channel models.NotificationChannel, msg Message) error {
	s.logger.InfoContext(ctx, "notification delivered",
		"channel", channel,
		"transfer_id", msg.TransferID,
		"to_party", msg.ToParty,
	)
	return nil
}

// Broker publishes messages to an event stream. Satisfied by the platform
// Kafka producer.
type Broker interface {
	Publish(ctx context.Context, topic, key string, body any) error
}

// WebhookSender pushes transfer confirmations onto a broker topic for
// external webhook consumers.
type WebhookSender struct {
	broker Broker
	topic  string
}

func NewWebhookSender(broker Broker, topic string) *WebhookSender {
	return &WebhookSender{broker: broker, topic: topic}
}

func (s *WebhookSender) Send(ctx context.Context, channel models.NotificationChannel, msg Message) error {
	type envelope struct {
		Channel models.NotificationChannel `json:"channel"`
		Message
	}
	return s.broker.Publish(ctx, s.topic, msg.TransferID.String(), envelope{Channel: channel, Message: msg})
}
