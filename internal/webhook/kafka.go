package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter - часть *kafka.Writer, нужная продюсеру
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaWebhookPublisher публикует события доски в топик Kafka
type KafkaWebhookPublisher struct {
	writer messageWriter
}

// NewKafkaWebhookPublisher создает синхронного продюсера для топика
func NewKafkaWebhookPublisher(brokers []string, topic string) *KafkaWebhookPublisher {
	return &KafkaWebhookPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 250 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
	}
}

// Publish пишет событие с ключом по id инцидента, чтобы события одной записи шли в одну партицию
func (p *KafkaWebhookPublisher) Publish(ctx context.Context, event BoardEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal board event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.IncidentID.String()),
		Value: body,
		Time:  event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to publish board event to Kafka: %w", err)
	}
	return nil
}

func (p *KafkaWebhookPublisher) Close() error {
	return p.writer.Close()
}
