package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaSink publishes events as JSON records to a Kafka topic. Records
// are keyed by subject so a talent's events stay in partition order.
type KafkaSink struct {
	client *kgo.Client
	topic  string
}

// NewKafkaSink dials the given brokers. The caller owns the sink and
// must Close it on shutdown to flush buffered records.
func NewKafkaSink(brokers []string, topic string) (*KafkaSink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}
	return &KafkaSink{client: client, topic: topic}, nil
}

func (s *KafkaSink) Append(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.Subject),
		Value: value,
	}
	// Async produce: delivery failures surface via Close's flush, and
	// the publisher already treats sinks as best-effort.
	s.client.Produce(ctx, record, nil)
	return nil
}

func (s *KafkaSink) Close() {
	s.client.Close()
}
