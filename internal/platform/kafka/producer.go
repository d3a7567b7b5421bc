package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer publishes JSON messages to Kafka topics. It is the single writer
// the audit stream and the webhook notification channel share.
type Producer struct {
	client *kgo.Client
}

// NewProducer connects to the given brokers and ensures the listed topics
// exist. Returns nil if brokers is empty (Kafka not configured).
func NewProducer(ctx context.Context, brokers string, topics ...string) (*Producer, error) {
	if brokers == "" {
		return nil, nil
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(strings.Split(brokers, ",")...),
		kgo.ProducerLinger(0),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("kafka ping failed: %w", err)
	}

	// Declare topology up front so first publishes don't race topic creation.
	adm := kadm.NewClient(client)
	if len(topics) > 0 {
		if _, err := adm.CreateTopics(ctx, 1, 1, nil, topics...); err != nil {
			// Existing topics are fine; anything else is fatal at startup.
			if !strings.Contains(err.Error(), "TOPIC_ALREADY_EXISTS") {
				client.Close()
				return nil, fmt.Errorf("create topics: %w", err)
			}
		}
	}

	return &Producer{client: client}, nil
}

// Publish marshals body as JSON and produces it synchronously to topic with
// the given key. Synchronous delivery keeps the calls that depend on it
// (fail-closed audit writes) honest about failure.
func (p *Producer) Publish(ctx context.Context, topic, key string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	record := &kgo.Record{Topic: topic, Key: []byte(key), Value: payload}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}
	return nil
}

// Close flushes and closes the underlying client.
func (p *Producer) Close() {
	if p == nil {
		return
	}
	p.client.Close()
}
