package repository

import (
	"context"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
)

// FinancialSource fetches raw financial fields for a ticker from an external
// provider. Implementations wrap models.ErrDataUnavailable on network
// failure, unknown ticker, or rate limiting.
type FinancialSource interface {
	Fundamentals(ctx context.Context, ticker string) (*models.CompanyRecord, error)

	// Available reports whether the source is configured (API key present).
	Available() bool
}

// NewsSource fetches recent headlines for a company.
type NewsSource interface {
	Headlines(ctx context.Context, ticker, companyName string) ([]models.Headline, error)
	Available() bool
}

// HistoryStore records produced scores and serves the real trend line.
// Implementations must be safe for concurrent use.
type HistoryStore interface {
	Record(ctx context.Context, r models.ScoreResult) error
	// Recent returns samples for the ticker newer than since, oldest first.
	Recent(ctx context.Context, ticker string, since time.Time) ([]models.TrendPoint, error)
	Close() error
}

// EventPublisher pushes score events to an external backend.
type EventPublisher interface {
	PublishScore(ctx context.Context, ev models.ScoreEvent) error
	Close() error
}

// Metrics abstracts operational metric recording.
type Metrics interface {
	RecordScore(risk string)
	RecordLastScore(ticker string, score float64)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
