package explain

import (
	"fmt"
	"strings"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
)

// featureLabels maps feature names to the phrasing used in summaries.
var featureLabels = map[string]string{
	models.FeatCurrentRatio:     "liquidity (current ratio)",
	models.FeatQuickRatio:       "quick liquidity",
	models.FeatDebtToEquity:     "leverage",
	models.FeatReturnOnEquity:   "return on equity",
	models.FeatReturnOnAssets:   "asset efficiency",
	models.FeatProfitMargin:     "profitability",
	models.FeatOperatingMargin:  "operating profitability",
	models.FeatRevenueGrowth:    "revenue growth",
	models.FeatEarningsGrowth:   "earnings growth",
	models.FeatPriceToBook:      "book valuation",
	models.FeatPriceToEarnings:  "earnings valuation",
	models.FeatBeta:             "market volatility",
	models.FeatMarketCapLog:     "company scale",
	models.FeatSentimentScore:   "news sentiment",
}

func label(feature string) string {
	if l, ok := featureLabels[feature]; ok {
		return l
	}
	return strings.ReplaceAll(feature, "_", " ")
}

// Summarize renders a short executive narrative from a score result and its
// explanation, naming the strongest drivers on each side.
func Summarize(result models.ScoreResult, exp models.Explanation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s scores %.1f out of 100, indicating %s credit risk.",
		result.Ticker, result.Score, strings.ToLower(string(result.Risk)))

	if ups := exp.Top(2, models.ImpactPositive); len(ups) > 0 {
		b.WriteString(" Strengths: ")
		b.WriteString(joinLabels(ups))
		b.WriteString(".")
	}
	if downs := exp.Top(2, models.ImpactNegative); len(downs) > 0 {
		b.WriteString(" Concerns: ")
		b.WriteString(joinLabels(downs))
		b.WriteString(".")
	}
	if result.Degraded {
		b.WriteString(" Some inputs were unavailable, so the assessment uses neutral substitutes.")
	}
	return b.String()
}

func joinLabels(cs []models.Contribution) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = label(c.Feature)
	}
	return strings.Join(parts, " and ")
}
