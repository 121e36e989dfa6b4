package models

import "time"

// RiskCategory buckets a score by the fixed threshold table.
type RiskCategory string

const (
	RiskLow      RiskCategory = "Low"
	RiskMedium   RiskCategory = "Medium"
	RiskHigh     RiskCategory = "High"
	RiskVeryHigh RiskCategory = "Very High"
)

// Fixed thresholds; these must match the rendering layer exactly.
const (
	ThresholdLow    = 70.0
	ThresholdMedium = 50.0
	ThresholdHigh   = 30.0
)

// RiskFromScore derives the risk category: score>=70 Low, 50..69 Medium,
// 30..49 High, below 30 Very High.
func RiskFromScore(score float64) RiskCategory {
	switch {
	case score >= ThresholdLow:
		return RiskLow
	case score >= ThresholdMedium:
		return RiskMedium
	case score >= ThresholdHigh:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// Color returns the gauge color hex for the category.
func (r RiskCategory) Color() string {
	switch r {
	case RiskLow:
		return "#00C851"
	case RiskMedium:
		return "#ffbb33"
	case RiskHigh:
		return "#ff4444"
	default:
		return "#CC0000"
	}
}

// Description is a short human label for the category.
func (r RiskCategory) Description() string {
	switch r {
	case RiskLow:
		return "Strong credit profile"
	case RiskMedium:
		return "Moderate credit risk"
	case RiskHigh:
		return "Elevated credit risk"
	default:
		return "Significant credit concerns"
	}
}

// ScoreResult is one scored observation for a company. Never mutated after
// creation.
type ScoreResult struct {
	RequestID   string       `json:"request_id"`
	Ticker      string       `json:"ticker"`
	Score       float64      `json:"score"`
	Risk        RiskCategory `json:"risk"`
	Degraded    bool         `json:"degraded"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// ScoreCard bundles the result with its explanation and the inputs that
// produced it. One explanation is tied 1:1 to its result.
type ScoreCard struct {
	Result      ScoreResult   `json:"result"`
	Explanation Explanation   `json:"explanation"`
	Features    FeatureVector `json:"features"`
	Company     CompanyRecord `json:"company"`
}

// ComparisonEntry is one company inside a comparison set.
type ComparisonEntry struct {
	Ticker   string        `json:"ticker"`
	Name     string        `json:"name"`
	Sector   string        `json:"sector"`
	Result   ScoreResult   `json:"result"`
	Features FeatureVector `json:"features"`
}

// ComparisonSet ranks several companies by score, best first. It has no
// identity beyond the request lifetime.
type ComparisonSet struct {
	Entries     []ComparisonEntry `json:"entries"`
	Errors      map[string]string `json:"errors,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}
