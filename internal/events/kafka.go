package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"match-night/utils"
)

// KafkaPublisher fans out domain events to a Kafka topic. Writes happen on
// the caller's goroutine with a short timeout; a failed write is logged and
// dropped rather than failing the mutation that produced it.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish writes the event keyed by session so per-session ordering holds.
func (p *KafkaPublisher) Publish(e Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		utils.Error("kafka publisher: marshal event", map[string]any{"kind": e.Kind, "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.SessionID),
		Value: payload,
	})
	if err != nil {
		utils.Error("kafka publisher: write event", map[string]any{
			"kind":       e.Kind,
			"session_id": e.SessionID,
			"error":      err.Error(),
		})
	}
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
