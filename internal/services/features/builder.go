// Package features derives the fixed-schema feature vector from a raw
// company record. Build is a pure function: the same record always yields
// the same vector.
package features

import (
	"math"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
)

// SentimentWindow is how many of the most recent headlines feed the
// sentiment scalar.
const SentimentWindow = 10

// Sentinel defaults substituted when a denominator is zero or a field is
// missing. Ratios default to an industry-neutral midpoint rather than zero
// where zero would read as an extreme (e.g. a P/E of 0).
var defaults = models.FeatureVector{
	models.FeatCurrentRatio:    1.0,
	models.FeatQuickRatio:      1.0,
	models.FeatDebtToEquity:    50.0,
	models.FeatReturnOnEquity:  0.0,
	models.FeatReturnOnAssets:  0.0,
	models.FeatProfitMargin:    0.0,
	models.FeatOperatingMargin: 0.0,
	models.FeatRevenueGrowth:   0.0,
	models.FeatEarningsGrowth:  0.0,
	models.FeatPriceToBook:     1.0,
	models.FeatPriceToEarnings: 15.0,
	models.FeatBeta:            1.0,
	models.FeatMarketCapLog:    9.0,
	models.FeatSentimentScore:  0.0,
}

// Defaults returns the neutral reference vector. The explainer uses it as
// the attribution baseline.
func Defaults() models.FeatureVector {
	return defaults.Clone()
}

// Build derives the feature vector from a company record. It never errors:
// every undefined ratio falls back to its sentinel default.
func Build(rec *models.CompanyRecord) models.FeatureVector {
	fv := Defaults()

	setRatio(fv, models.FeatCurrentRatio, rec.CurrentAssets, rec.CurrentLiabilities, 1)
	setRatio(fv, models.FeatQuickRatio, rec.QuickAssets, rec.CurrentLiabilities, 1)
	setRatio(fv, models.FeatDebtToEquity, rec.TotalDebt, rec.TotalEquity, 100)
	setRatio(fv, models.FeatReturnOnEquity, rec.NetIncome, rec.TotalEquity, 100)
	setRatio(fv, models.FeatReturnOnAssets, rec.NetIncome, rec.TotalAssets, 100)
	setRatio(fv, models.FeatProfitMargin, rec.NetIncome, rec.Revenue, 100)
	setRatio(fv, models.FeatOperatingMargin, rec.OperatingIncome, rec.Revenue, 100)

	setIfFinite(fv, models.FeatRevenueGrowth, rec.RevenueGrowthPct)
	setIfFinite(fv, models.FeatEarningsGrowth, rec.EarningsGrowthPct)
	if rec.PriceToBook > 0 {
		setIfFinite(fv, models.FeatPriceToBook, rec.PriceToBook)
	}
	if rec.PriceToEarnings > 0 {
		setIfFinite(fv, models.FeatPriceToEarnings, rec.PriceToEarnings)
	}
	if rec.Beta > 0 {
		setIfFinite(fv, models.FeatBeta, rec.Beta)
	}
	if rec.MarketCap > 0 {
		setIfFinite(fv, models.FeatMarketCapLog, math.Log10(rec.MarketCap))
	}

	fv[models.FeatSentimentScore] = Sentiment(rec.Headlines)

	return fv
}

// Sentiment averages polarity over the most recent SentimentWindow headlines,
// clamped to [-1, 1]. An empty set yields 0 (neutral).
func Sentiment(headlines []models.Headline) float64 {
	if len(headlines) == 0 {
		return 0
	}
	n := len(headlines)
	if n > SentimentWindow {
		n = SentimentWindow
	}
	var sum float64
	for _, h := range headlines[:n] {
		sum += h.Polarity
	}
	avg := sum / float64(n)
	if avg < -1 {
		return -1
	}
	if avg > 1 {
		return 1
	}
	return avg
}

// setRatio computes num/den*scale; a non-positive denominator keeps the
// sentinel default.
func setRatio(fv models.FeatureVector, name string, num, den, scale float64) {
	if den <= 0 {
		return
	}
	setIfFinite(fv, name, num/den*scale)
}

func setIfFinite(fv models.FeatureVector, name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	fv[name] = v
}
