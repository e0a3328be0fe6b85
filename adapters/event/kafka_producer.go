package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/walterBrayan/BackTalentHub/internal/application/service"
	"github.com/walterBrayan/BackTalentHub/internal/config"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

const TopicProfileEvents = "profile.events"

// KafkaProducer publishes profile change events keyed by user id, so every
// event of one user lands on the same partition in order.
type KafkaProducer struct {
	writer *kafka.Writer
	log    logger.Logger
}

func NewKafkaProducer(cfg config.Config, log logger.Logger) (*KafkaProducer, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Kafka producer initialized")
	return &KafkaProducer{writer: writer, log: log}, nil
}

var _ service.EventPublisher = (*KafkaProducer)(nil)

func (p *KafkaProducer) PublishProfileEvent(ctx context.Context, evt service.ProfileEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal profile event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.UserID.String()),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write profile event: %w", err)
	}
	return nil
}

func (p *KafkaProducer) Close() {
	if p.writer != nil {
		p.writer.Close()
	}
	p.log.Info("Closed Kafka producer")
}
