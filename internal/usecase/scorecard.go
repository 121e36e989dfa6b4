package usecase

import (
	"context"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	drepo "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/repository"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/middleware"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/explain"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/features"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/scoring"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
)

// ScoreCardUsecase runs the full scoring path for one ticker: collect,
// build features, score, explain, then hand the result to the async
// pipeline for history and event delivery.
type ScoreCardUsecase struct {
	collector *Collector
	model     *scoring.Model
	explainer *explain.Explainer
	pipeline  *middleware.ScorePipeline
	metrics   drepo.Metrics
	log       *logger.Logger
}

// NewScoreCardUsecase wires the scoring path.
func NewScoreCardUsecase(
	collector *Collector,
	model *scoring.Model,
	explainer *explain.Explainer,
	pipeline *middleware.ScorePipeline,
	metrics drepo.Metrics,
	log *logger.Logger,
) *ScoreCardUsecase {
	return &ScoreCardUsecase{
		collector: collector,
		model:     model,
		explainer: explainer,
		pipeline:  pipeline,
		metrics:   metrics,
		log:       log,
	}
}

// Score produces the full score card for a ticker.
func (u *ScoreCardUsecase) Score(ctx context.Context, ticker string) (*models.ScoreCard, error) {
	start := time.Now()

	rec, err := u.collector.Collect(ctx, ticker)
	if err != nil {
		return nil, err
	}

	fv := features.Build(rec)
	result, err := u.model.Result(rec.Ticker, fv, rec.Degraded)
	if err != nil {
		u.metrics.RecordError("score")
		return nil, err
	}

	exp, err := u.explainer.Explain(fv)
	if err != nil {
		u.metrics.RecordError("explain")
		return nil, err
	}
	exp.Summary = explain.Summarize(result, exp)

	if u.pipeline != nil {
		u.pipeline.Process(result)
	}
	u.metrics.RecordLatency("score", time.Since(start).Seconds())

	u.log.Info("score produced",
		logger.String("ticker", result.Ticker),
		logger.Float64("score", result.Score),
		logger.String("risk", string(result.Risk)),
		logger.Bool("degraded", result.Degraded),
	)

	return &models.ScoreCard{
		Result:      result,
		Explanation: exp,
		Features:    fv,
		Company:     *rec,
	}, nil
}
