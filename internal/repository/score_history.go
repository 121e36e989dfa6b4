package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	pkgch "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/clickhouse"
	applogger "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
)

// score_history schema, applied idempotently at startup.
var historySchema = []string{
	`CREATE TABLE IF NOT EXISTS score_history (
        request_id   String,
        ticker       LowCardinality(String),
        score        Float64,
        risk         LowCardinality(String),
        degraded     UInt8,
        generated_at DateTime64(3, 'UTC')
    ) ENGINE = MergeTree()
    PARTITION BY toYYYYMM(generated_at)
    ORDER BY (ticker, generated_at)
    TTL toDateTime(generated_at) + INTERVAL 180 DAY`,
}

// CHScoreHistory implements HistoryStore backed by ClickHouse.
type CHScoreHistory struct {
	db *sql.DB
	ch *pkgch.Client
	l  *applogger.Logger
}

// NewCHScoreHistory creates the store and ensures the schema exists.
func NewCHScoreHistory(ch *pkgch.Client, l *applogger.Logger) (*CHScoreHistory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ch.InitSchema(ctx, historySchema); err != nil {
		return nil, fmt.Errorf("score history schema: %w", err)
	}
	return &CHScoreHistory{db: ch.DB(), ch: ch, l: l}, nil
}

func (s *CHScoreHistory) Record(ctx context.Context, r models.ScoreResult) error {
	const q = `
        INSERT INTO score_history (request_id, ticker, score, risk, degraded, generated_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	degraded := uint8(0)
	if r.Degraded {
		degraded = 1
	}
	if _, err := s.db.ExecContext(ctx, q, r.RequestID, r.Ticker, r.Score, string(r.Risk), degraded, r.GeneratedAt); err != nil {
		if s.l != nil {
			s.l.Error("clickhouse score insert error",
				applogger.String("ticker", r.Ticker),
				applogger.Error(err),
			)
		}
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// Recent returns one sample per day (the day's last score), oldest first.
func (s *CHScoreHistory) Recent(ctx context.Context, ticker string, since time.Time) ([]models.TrendPoint, error) {
	start := time.Now()
	const q = `
        SELECT toStartOfDay(generated_at) AS day, argMax(score, generated_at) AS score
        FROM score_history
        WHERE ticker = ? AND generated_at >= ?
        GROUP BY day
        ORDER BY day ASC
    `
	rows, err := s.db.QueryContext(ctx, q, ticker, since)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse trend query error",
				applogger.String("ticker", ticker),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("recent scores: %w", err)
	}
	defer rows.Close()

	out := make([]models.TrendPoint, 0, 64)
	for rows.Next() {
		var p models.TrendPoint
		if err := rows.Scan(&p.Date, &p.Score); err != nil {
			return nil, fmt.Errorf("scan trend point: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if s.l != nil {
		s.l.Info("clickhouse trend ok",
			applogger.String("ticker", ticker),
			applogger.Int("rows", len(out)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

func (s *CHScoreHistory) Close() error {
	return s.ch.Close()
}
