package present

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	drepo "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/repository"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
)

// minRealSamples is the smallest history that renders as a real line.
// Below that the trend falls back to the synthetic walk.
const minRealSamples = 2

// TrendBuilder produces the score-history line for a dashboard. Real
// history comes from the store when enough samples exist; otherwise a
// deterministic synthetic walk is generated and flagged as such.
type TrendBuilder struct {
	store drepo.HistoryStore
	log   *logger.Logger
}

// NewTrendBuilder wires the builder to the history store.
func NewTrendBuilder(store drepo.HistoryStore, log *logger.Logger) *TrendBuilder {
	return &TrendBuilder{store: store, log: log}
}

// Series returns up to days daily points ending at the current score,
// oldest first. Store errors degrade to the synthetic series instead of
// failing the dashboard.
func (t *TrendBuilder) Series(ctx context.Context, ticker string, current float64, days int, now time.Time) models.TrendSeries {
	if t.store != nil {
		since := now.AddDate(0, 0, -days)
		points, err := t.store.Recent(ctx, ticker, since)
		if err != nil {
			t.log.Warn("history read failed, using synthetic trend",
				logger.String("ticker", ticker), logger.Error(err))
		} else if len(points) >= minRealSamples {
			return models.TrendSeries{Points: points, Synthetic: false}
		}
	}
	return syntheticSeries(ticker, current, days, now)
}

// syntheticSeries builds a deterministic daily random walk that ends at the
// current score. Seeding by ticker keeps repeated requests stable.
func syntheticSeries(ticker string, current float64, days int, now time.Time) models.TrendSeries {
	h := fnv.New64a()
	h.Write([]byte(ticker))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	// Walk backwards from the current score so the last point is exact.
	scores := make([]float64, days)
	scores[days-1] = current
	for i := days - 2; i >= 0; i-- {
		step := rng.NormFloat64() * 1.5
		scores[i] = clampScore(scores[i+1] + step)
	}

	day := now.UTC().Truncate(24 * time.Hour)
	points := make([]models.TrendPoint, days)
	for i := range points {
		points[i] = models.TrendPoint{
			Date:  day.AddDate(0, 0, i-(days-1)),
			Score: scores[i],
		}
	}
	return models.TrendSeries{Points: points, Synthetic: true}
}

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
