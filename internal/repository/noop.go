package repository

import (
	"context"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
)

// NoopHistoryStore satisfies HistoryStore when ClickHouse is not
// configured. Recent always returns nothing, so trends stay synthetic.
type NoopHistoryStore struct{}

func (NoopHistoryStore) Record(context.Context, models.ScoreResult) error { return nil }

func (NoopHistoryStore) Recent(context.Context, string, time.Time) ([]models.TrendPoint, error) {
	return nil, nil
}

func (NoopHistoryStore) Close() error { return nil }

// NoopPublisher satisfies EventPublisher when Kafka is not configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishScore(context.Context, models.ScoreEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
