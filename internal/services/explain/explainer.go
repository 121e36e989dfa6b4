// Package explain attributes a score to individual features relative to the
// model baseline. Attribution is deterministic: identical vectors always
// produce the identical ordered explanation, which the chart layer relies on.
package explain

import (
	"fmt"
	"math"
	"sort"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/scoring"
)

// impactEpsilon separates a real contribution from numeric noise.
const impactEpsilon = 1e-9

// Explainer computes per-feature signed contributions by substituting one
// feature at a time with its baseline value and re-predicting, then scaling
// the raw deltas so they sum exactly to score minus baseline.
type Explainer struct {
	model *scoring.Model
}

// New creates an explainer bound to the shared model context.
func New(model *scoring.Model) *Explainer {
	return &Explainer{model: model}
}

// Explain produces the ordered attribution for a feature vector. Ordering is
// by descending absolute contribution; equal magnitudes keep the canonical
// feature order.
func (e *Explainer) Explain(fv models.FeatureVector) (models.Explanation, error) {
	vals, ok := fv.Project()
	if !ok {
		return models.Explanation{}, fmt.Errorf("explain: feature vector missing keys: %w", models.ErrModelInputMismatch)
	}

	score := e.model.PredictProjected(vals)
	baselineVals := e.model.BaselineVector()
	baseline := e.model.Baseline()

	raw := make([]float64, len(vals))
	var rawTotal float64
	for i := range vals {
		if vals[i] == baselineVals[i] {
			continue
		}
		probe := make([]float64, len(vals))
		copy(probe, vals)
		probe[i] = baselineVals[i]
		raw[i] = score - e.model.PredictProjected(probe)
		rawTotal += raw[i]
	}

	// Reconcile: the contributions must sum to score-baseline. Scale when
	// the raw deltas carry signal; otherwise leave them as-is (all-baseline
	// input degenerates to an empty attribution).
	target := score - baseline
	if math.Abs(rawTotal) > impactEpsilon {
		scale := target / rawTotal
		for i := range raw {
			raw[i] *= scale
		}
	}

	contributions := make([]models.Contribution, len(models.FeatureOrder))
	for i, name := range models.FeatureOrder {
		contributions[i] = models.Contribution{
			Feature: name,
			Value:   raw[i],
			Impact:  impactOf(raw[i]),
		}
	}
	// Stable sort keeps canonical order for ties.
	sort.SliceStable(contributions, func(a, b int) bool {
		return math.Abs(contributions[a].Value) > math.Abs(contributions[b].Value)
	})

	return models.Explanation{
		Baseline:      baseline,
		Contributions: contributions,
	}, nil
}

func impactOf(v float64) models.Impact {
	switch {
	case v > impactEpsilon:
		return models.ImpactPositive
	case v < -impactEpsilon:
		return models.ImpactNegative
	default:
		return models.ImpactNeutral
	}
}
