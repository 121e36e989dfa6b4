package models

import (
	"regexp"
	"strings"
	"time"
)

var tickerPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9.\-]{0,9}$`)

// NormalizeTicker uppercases and trims a user-supplied ticker.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidTicker reports whether s matches the known-symbol pattern.
// Matching is case-insensitive; callers normalize before use.
func ValidTicker(s string) bool {
	return tickerPattern.MatchString(strings.TrimSpace(s))
}

// Headline is a single news item with its precomputed polarity in [-1, 1].
type Headline struct {
	Title     string    `json:"title"`
	Published time.Time `json:"published"`
	URL       string    `json:"url,omitempty"`
	Polarity  float64   `json:"polarity"`
}

// CompanyRecord is the flat attribute record produced by the data collector.
// It is immutable once fetched and discarded when the request completes.
type CompanyRecord struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`

	// Raw financial fields. Zero means "not reported" for balance-sheet
	// items; the feature builder substitutes documented defaults.
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	QuickAssets        float64 `json:"quick_assets"`
	TotalAssets        float64 `json:"total_assets"`
	TotalDebt          float64 `json:"total_debt"`
	TotalEquity        float64 `json:"total_equity"`
	Revenue            float64 `json:"revenue"`
	NetIncome          float64 `json:"net_income"`
	OperatingIncome    float64 `json:"operating_income"`
	MarketCap          float64 `json:"market_cap"`
	Beta               float64 `json:"beta"`
	PriceToEarnings    float64 `json:"price_to_earnings"`
	PriceToBook        float64 `json:"price_to_book"`
	RevenueGrowthPct   float64 `json:"revenue_growth_pct"`
	EarningsGrowthPct  float64 `json:"earnings_growth_pct"`

	Headlines []Headline `json:"headlines"`

	// Degraded marks that a source was unavailable and defaults were
	// substituted (partial-degradation policy).
	Degraded  bool      `json:"degraded"`
	FetchedAt time.Time `json:"fetched_at"`
}
