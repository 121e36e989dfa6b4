package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
)

const (
	// CompareMin and CompareMax bound how many tickers one comparison
	// may hold.
	CompareMin = 2
	CompareMax = 10
)

// CompareUsecase scores several tickers concurrently and ranks them.
// Per-ticker failures land in the Errors map instead of failing the set.
type CompareUsecase struct {
	scorecard *ScoreCardUsecase
	log       *logger.Logger
}

// NewCompareUsecase wires the comparison path.
func NewCompareUsecase(scorecard *ScoreCardUsecase, log *logger.Logger) *CompareUsecase {
	return &CompareUsecase{scorecard: scorecard, log: log}
}

// Compare scores the given tickers and returns them ranked best first.
// Duplicate tickers collapse to one entry. The whole call fails only when
// the ticker count is out of range or every ticker fails.
func (u *CompareUsecase) Compare(ctx context.Context, tickers []string) (*models.ComparisonSet, error) {
	unique := dedupe(tickers)
	if len(unique) < CompareMin || len(unique) > CompareMax {
		return nil, fmt.Errorf("compare needs %d to %d distinct tickers, got %d: %w",
			CompareMin, CompareMax, len(unique), models.ErrInvalidTicker)
	}

	type outcome struct {
		ticker string
		card   *models.ScoreCard
		err    error
	}
	results := make([]outcome, len(unique))

	var wg sync.WaitGroup
	for i, t := range unique {
		wg.Add(1)
		go func(i int, t string) {
			defer wg.Done()
			card, err := u.scorecard.Score(ctx, t)
			results[i] = outcome{ticker: t, card: card, err: err}
		}(i, t)
	}
	wg.Wait()

	set := &models.ComparisonSet{
		Errors:      make(map[string]string),
		GeneratedAt: time.Now().UTC(),
	}
	for _, r := range results {
		if r.err != nil {
			u.log.Warn("compare ticker failed",
				logger.String("ticker", r.ticker), logger.Error(r.err))
			set.Errors[r.ticker] = r.err.Error()
			continue
		}
		set.Entries = append(set.Entries, models.ComparisonEntry{
			Ticker:   r.card.Result.Ticker,
			Name:     r.card.Company.Name,
			Sector:   r.card.Company.Sector,
			Result:   r.card.Result,
			Features: r.card.Features,
		})
	}
	if len(set.Entries) == 0 {
		return nil, fmt.Errorf("compare: no ticker could be scored: %w", models.ErrDataUnavailable)
	}

	// Rank best first; ties keep request order.
	sort.SliceStable(set.Entries, func(a, b int) bool {
		return set.Entries[a].Result.Score > set.Entries[b].Result.Score
	})
	if len(set.Errors) == 0 {
		set.Errors = nil
	}
	return set, nil
}

func dedupe(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		n := models.NormalizeTicker(t)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
