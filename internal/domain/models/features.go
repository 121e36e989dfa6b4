package models

// Feature names, canonical model ordering. The scoring model, the explainer
// and the radar mapping all project vectors through this order, so the key
// set must stay identical across companies.
const (
	FeatCurrentRatio     = "current_ratio"
	FeatQuickRatio       = "quick_ratio"
	FeatDebtToEquity     = "debt_to_equity"
	FeatReturnOnEquity   = "return_on_equity"
	FeatReturnOnAssets   = "return_on_assets"
	FeatProfitMargin     = "profit_margin"
	FeatOperatingMargin  = "operating_margin"
	FeatRevenueGrowth    = "revenue_growth"
	FeatEarningsGrowth   = "earnings_growth"
	FeatPriceToBook      = "price_to_book"
	FeatPriceToEarnings  = "price_to_earnings"
	FeatBeta             = "beta"
	FeatMarketCapLog     = "market_cap_log"
	FeatSentimentScore   = "sentiment_score"
)

// FeatureOrder is the fixed input ordering the trained model expects.
var FeatureOrder = []string{
	FeatCurrentRatio,
	FeatQuickRatio,
	FeatDebtToEquity,
	FeatReturnOnEquity,
	FeatReturnOnAssets,
	FeatProfitMargin,
	FeatOperatingMargin,
	FeatRevenueGrowth,
	FeatEarningsGrowth,
	FeatPriceToBook,
	FeatPriceToEarnings,
	FeatBeta,
	FeatMarketCapLog,
	FeatSentimentScore,
}

// FeatureVector maps feature name to value. The key set is fixed; a vector
// missing a key from FeatureOrder is a schema-drift defect, not bad input.
type FeatureVector map[string]float64

// Project returns the vector values in canonical order. ok is false when a
// key from FeatureOrder is absent.
func (fv FeatureVector) Project() ([]float64, bool) {
	out := make([]float64, len(FeatureOrder))
	for i, name := range FeatureOrder {
		v, present := fv[name]
		if !present {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Clone returns an independent copy of the vector.
func (fv FeatureVector) Clone() FeatureVector {
	out := make(FeatureVector, len(fv))
	for k, v := range fv {
		out[k] = v
	}
	return out
}
