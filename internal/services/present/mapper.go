// Package present maps score cards to renderer-agnostic chart descriptions.
// All visual decisions (colors aside, which come from the fixed risk table)
// belong to the client.
package present

import (
	"context"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/scoring"
)

// MaxBars caps the feature-impact chart at the most influential entries.
const MaxBars = 8

// radarAxes groups features into the six dashboard dimensions. Each axis
// averages the 0..100 normalized values of its member features, so the radar
// and the score read from the same ratio mapping.
var radarAxes = []struct {
	Name     string
	Features []string
}{
	{"Liquidity", []string{models.FeatCurrentRatio, models.FeatQuickRatio}},
	{"Profitability", []string{models.FeatProfitMargin, models.FeatOperatingMargin, models.FeatReturnOnEquity, models.FeatReturnOnAssets}},
	{"Leverage", []string{models.FeatDebtToEquity}},
	{"Growth", []string{models.FeatRevenueGrowth, models.FeatEarningsGrowth}},
	{"Market", []string{models.FeatPriceToBook, models.FeatPriceToEarnings, models.FeatBeta, models.FeatMarketCapLog}},
	{"Sentiment", []string{models.FeatSentimentScore}},
}

// barLabels is the short chart wording per feature.
var barLabels = map[string]string{
	models.FeatCurrentRatio:    "Current Ratio",
	models.FeatQuickRatio:      "Quick Ratio",
	models.FeatDebtToEquity:    "Debt / Equity",
	models.FeatReturnOnEquity:  "Return on Equity",
	models.FeatReturnOnAssets:  "Return on Assets",
	models.FeatProfitMargin:    "Profit Margin",
	models.FeatOperatingMargin: "Operating Margin",
	models.FeatRevenueGrowth:   "Revenue Growth",
	models.FeatEarningsGrowth:  "Earnings Growth",
	models.FeatPriceToBook:     "Price / Book",
	models.FeatPriceToEarnings: "Price / Earnings",
	models.FeatBeta:            "Beta",
	models.FeatMarketCapLog:    "Company Scale",
	models.FeatSentimentScore:  "News Sentiment",
}

// Mapper builds DashboardBundle values from scored cards.
type Mapper struct {
	trend *TrendBuilder
}

// NewMapper wires the mapper with its trend source.
func NewMapper(trend *TrendBuilder) *Mapper {
	return &Mapper{trend: trend}
}

// Gauge builds the score gauge with the fixed risk bands.
func Gauge(score float64) models.GaugeSpec {
	return models.GaugeSpec{
		Value: score,
		Color: models.RiskFromScore(score).Color(),
		Bands: []models.GaugeBand{
			{From: 0, To: models.ThresholdHigh, Label: string(models.RiskVeryHigh), Color: models.RiskVeryHigh.Color()},
			{From: models.ThresholdHigh, To: models.ThresholdMedium, Label: string(models.RiskHigh), Color: models.RiskHigh.Color()},
			{From: models.ThresholdMedium, To: models.ThresholdLow, Label: string(models.RiskMedium), Color: models.RiskMedium.Color()},
			{From: models.ThresholdLow, To: 100, Label: string(models.RiskLow), Color: models.RiskLow.Color()},
		},
	}
}

// Bars maps the explanation into ranked impact bars, keeping the
// explanation's order and truncating to MaxBars. Neutral contributions are
// skipped; an all-baseline vector yields an empty chart rather than noise.
func Bars(exp models.Explanation) []models.BarEntry {
	out := make([]models.BarEntry, 0, MaxBars)
	for _, c := range exp.Contributions {
		if c.Impact == models.ImpactNeutral {
			continue
		}
		out = append(out, models.BarEntry{
			Feature: c.Feature,
			Label:   barLabel(c.Feature),
			Value:   c.Value,
			Impact:  c.Impact,
		})
		if len(out) == MaxBars {
			break
		}
	}
	return out
}

func barLabel(feature string) string {
	if l, ok := barLabels[feature]; ok {
		return l
	}
	return feature
}

// Radar scales the feature vector onto the six dashboard axes using the
// same normalization the heuristic score uses.
func Radar(fv models.FeatureVector) []models.RadarAxis {
	out := make([]models.RadarAxis, 0, len(radarAxes))
	for _, axis := range radarAxes {
		var sum float64
		for _, f := range axis.Features {
			sum += scoring.Normalize(f, fv[f])
		}
		out = append(out, models.RadarAxis{
			Axis:  axis.Name,
			Value: sum / float64(len(axis.Features)),
		})
	}
	return out
}

// Dashboard assembles the full chart bundle for one scored company. The
// context bounds the history read behind the trend line.
func (m *Mapper) Dashboard(ctx context.Context, card models.ScoreCard, days int, now time.Time) models.DashboardBundle {
	return models.DashboardBundle{
		Ticker:      card.Result.Ticker,
		Name:        card.Company.Name,
		Sector:      card.Company.Sector,
		Risk:        card.Result.Risk,
		RiskDetail:  card.Result.Risk.Description(),
		Summary:     card.Explanation.Summary,
		Degraded:    card.Result.Degraded,
		Gauge:       Gauge(card.Result.Score),
		Bars:        Bars(card.Explanation),
		Radar:       Radar(card.Features),
		Trend:       m.trend.Series(ctx, card.Result.Ticker, card.Result.Score, days, now),
		GeneratedAt: now,
	}
}
