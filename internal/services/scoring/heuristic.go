package scoring

import "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"

// heuristicWeights blend the normalized feature scores into the credit
// score. Grouped weights: liquidity 0.20, profitability 0.28, leverage 0.17,
// growth 0.10, market 0.17, sentiment 0.08. Indexed by canonical order.
var heuristicWeights = map[string]float64{
	models.FeatCurrentRatio:    0.13,
	models.FeatQuickRatio:      0.07,
	models.FeatReturnOnEquity:  0.10,
	models.FeatReturnOnAssets:  0.05,
	models.FeatProfitMargin:    0.08,
	models.FeatOperatingMargin: 0.05,
	models.FeatDebtToEquity:    0.17,
	models.FeatRevenueGrowth:   0.06,
	models.FeatEarningsGrowth:  0.04,
	models.FeatPriceToBook:     0.03,
	models.FeatPriceToEarnings: 0.04,
	models.FeatBeta:            0.05,
	models.FeatMarketCapLog:    0.05,
	models.FeatSentimentScore:  0.08,
}

// Heuristic is the pretrained-artifact-free regressor: a weighted blend of
// the per-feature health scales. It keeps the service fully functional in
// demo mode and doubles as the label generator the boosted model was
// trained against.
type Heuristic struct{}

// NewHeuristic creates the heuristic regressor.
func NewHeuristic() *Heuristic { return &Heuristic{} }

// Name identifies the backend in logs and health output.
func (h *Heuristic) Name() string { return "heuristic" }

// NumFeatures matches the canonical feature ordering.
func (h *Heuristic) NumFeatures() int { return len(models.FeatureOrder) }

// Predict maps a projected feature vector to a raw score. Inputs arrive in
// canonical order; output is naturally within [0, 100] because every scale
// is and the weights sum to 1.
func (h *Heuristic) Predict(vals []float64) float64 {
	var score float64
	for i, name := range models.FeatureOrder {
		if i >= len(vals) {
			break
		}
		score += heuristicWeights[name] * Normalize(name, vals[i])
	}
	return score
}
