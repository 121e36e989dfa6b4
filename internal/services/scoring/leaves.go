package scoring

import (
	"fmt"

	"github.com/dmitryikh/leaves"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
)

// LightGBM wraps a pretrained gradient-boosted ensemble loaded from a
// LightGBM text artifact. The ensemble is read-only after load and safe for
// concurrent prediction.
type LightGBM struct {
	ensemble *leaves.Ensemble
}

// LoadLightGBM loads the model artifact once at process start. The artifact
// must have been trained on the canonical feature ordering; a feature-count
// mismatch is schema drift and fails fast.
func LoadLightGBM(path string) (*LightGBM, error) {
	ensemble, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("load lightgbm artifact %s: %w", path, err)
	}
	if n := ensemble.NFeatures(); n != len(models.FeatureOrder) {
		return nil, fmt.Errorf("artifact expects %d features, schema has %d: %w",
			n, len(models.FeatureOrder), models.ErrModelInputMismatch)
	}
	return &LightGBM{ensemble: ensemble}, nil
}

// Name identifies the backend in logs and health output.
func (m *LightGBM) Name() string { return "lightgbm" }

// NumFeatures returns the artifact's input width.
func (m *LightGBM) NumFeatures() int { return m.ensemble.NFeatures() }

// Predict runs single-row inference over all estimators.
func (m *LightGBM) Predict(vals []float64) float64 {
	return m.ensemble.PredictSingle(vals, 0)
}
