// Package scoring maps feature vectors to credit scores through a pretrained
// regressor handle shared read-only across requests.
package scoring

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/features"
)

// Regressor is the pluggable inference backend. Implementations must be
// safe for concurrent Predict calls.
type Regressor interface {
	Predict(vals []float64) float64
	NumFeatures() int
	Name() string
}

// Model is the process-wide model context: constructed once at startup,
// passed by reference into every request path, never mutated afterwards.
type Model struct {
	reg           Regressor
	baselineVals  []float64
	baselineScore float64
}

// NewModel builds the model context and pins the attribution baseline (the
// prediction on the neutral reference vector).
func NewModel(reg Regressor) (*Model, error) {
	if n := reg.NumFeatures(); n != len(models.FeatureOrder) {
		return nil, fmt.Errorf("regressor %s expects %d features, schema has %d: %w",
			reg.Name(), n, len(models.FeatureOrder), models.ErrModelInputMismatch)
	}
	baseline, ok := features.Defaults().Project()
	if !ok {
		return nil, fmt.Errorf("defaults table incomplete: %w", models.ErrModelInputMismatch)
	}
	return &Model{
		reg:           reg,
		baselineVals:  baseline,
		baselineScore: clamp(reg.Predict(baseline)),
	}, nil
}

// Backend names the active regressor.
func (m *Model) Backend() string { return m.reg.Name() }

// Baseline is the expected score on the neutral reference vector.
func (m *Model) Baseline() float64 { return m.baselineScore }

// BaselineVector returns a copy of the projected reference vector.
func (m *Model) BaselineVector() []float64 {
	out := make([]float64, len(m.baselineVals))
	copy(out, m.baselineVals)
	return out
}

// Score projects the vector into the trained ordering and predicts. A
// missing feature key is schema drift: fatal, never defaulted here.
func (m *Model) Score(fv models.FeatureVector) (float64, error) {
	vals, ok := fv.Project()
	if !ok {
		return 0, fmt.Errorf("feature vector missing keys from canonical order: %w", models.ErrModelInputMismatch)
	}
	return clamp(m.reg.Predict(vals)), nil
}

// PredictProjected predicts on an already-projected vector, clamped. Used by
// the explainer for substitution passes.
func (m *Model) PredictProjected(vals []float64) float64 {
	return clamp(m.reg.Predict(vals))
}

// Result scores a vector and stamps a full ScoreResult.
func (m *Model) Result(ticker string, fv models.FeatureVector, degraded bool) (models.ScoreResult, error) {
	score, err := m.Score(fv)
	if err != nil {
		return models.ScoreResult{}, err
	}
	return models.ScoreResult{
		RequestID:   uuid.NewString(),
		Ticker:      ticker,
		Score:       score,
		Risk:        models.RiskFromScore(score),
		Degraded:    degraded,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
