package repository

import (
	"context"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	pkgkafka "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/kafka"
)

// KafkaScorePublisher implements EventPublisher on a Kafka topic. Messages
// are keyed by ticker so per-company ordering holds within a partition.
type KafkaScorePublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaScorePublisher wraps an existing producer.
func NewKafkaScorePublisher(producer *pkgkafka.Producer, topic string) *KafkaScorePublisher {
	return &KafkaScorePublisher{producer: producer, topic: topic}
}

func (p *KafkaScorePublisher) PublishScore(ctx context.Context, ev models.ScoreEvent) error {
	return p.producer.Publish(ctx, p.topic, []byte(ev.Ticker), ev)
}

func (p *KafkaScorePublisher) Close() error {
	return p.producer.Close()
}
