package features

import (
	"math"
	"reflect"
	"testing"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
)

func TestBuildRatios(t *testing.T) {
	rec := &models.CompanyRecord{
		Ticker:             "ACME",
		CurrentAssets:      200,
		CurrentLiabilities: 100,
		QuickAssets:        150,
		TotalAssets:        1000,
		TotalDebt:          300,
		TotalEquity:        500,
		Revenue:            800,
		NetIncome:          80,
		OperatingIncome:    120,
	}
	fv := Build(rec)

	if got := fv[models.FeatCurrentRatio]; got != 2.0 {
		t.Errorf("current_ratio = %v, want 2.0", got)
	}
	if got := fv[models.FeatQuickRatio]; got != 1.5 {
		t.Errorf("quick_ratio = %v, want 1.5", got)
	}
	if got := fv[models.FeatDebtToEquity]; got != 60 {
		t.Errorf("debt_to_equity = %v, want 60", got)
	}
	if got := fv[models.FeatReturnOnEquity]; got != 16 {
		t.Errorf("return_on_equity = %v, want 16", got)
	}
	if got := fv[models.FeatProfitMargin]; got != 10 {
		t.Errorf("profit_margin = %v, want 10", got)
	}
	if got := fv[models.FeatOperatingMargin]; got != 15 {
		t.Errorf("operating_margin = %v, want 15", got)
	}
}

func TestBuildZeroDenominatorKeepsDefault(t *testing.T) {
	rec := &models.CompanyRecord{Ticker: "ACME"}
	fv := Build(rec)

	def := Defaults()
	if fv[models.FeatCurrentRatio] != def[models.FeatCurrentRatio] {
		t.Errorf("expected default current_ratio, got %v", fv[models.FeatCurrentRatio])
	}
	if fv[models.FeatDebtToEquity] != def[models.FeatDebtToEquity] {
		t.Errorf("expected default debt_to_equity, got %v", fv[models.FeatDebtToEquity])
	}
}

func TestBuildComplete(t *testing.T) {
	fv := Build(&models.CompanyRecord{Ticker: "ACME"})
	if _, ok := fv.Project(); !ok {
		t.Fatal("built vector must cover the full schema")
	}
}

func TestBuildPure(t *testing.T) {
	rec := &models.CompanyRecord{
		Ticker:             "ACME",
		CurrentAssets:      200,
		CurrentLiabilities: 100,
		MarketCap:          5e9,
		Headlines: []models.Headline{
			{Title: "good", Polarity: 0.5},
		},
	}
	a := Build(rec)
	b := Build(rec)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Build is not deterministic")
	}
}

func TestBuildMarketCapLog(t *testing.T) {
	fv := Build(&models.CompanyRecord{Ticker: "ACME", MarketCap: 1e10})
	if got := fv[models.FeatMarketCapLog]; math.Abs(got-10) > 1e-9 {
		t.Fatalf("market_cap_log = %v, want 10", got)
	}
}

func TestSentimentAveragesWindow(t *testing.T) {
	hs := make([]models.Headline, 0, SentimentWindow+5)
	for i := 0; i < SentimentWindow; i++ {
		hs = append(hs, models.Headline{Polarity: 0.5})
	}
	// Beyond the window; must be ignored.
	for i := 0; i < 5; i++ {
		hs = append(hs, models.Headline{Polarity: -1})
	}
	if got := Sentiment(hs); got != 0.5 {
		t.Fatalf("sentiment = %v, want 0.5", got)
	}
}

func TestSentimentEmptyNeutral(t *testing.T) {
	if got := Sentiment(nil); got != 0 {
		t.Fatalf("empty headlines should be neutral, got %v", got)
	}
}

func TestDefaultsCopied(t *testing.T) {
	a := Defaults()
	a[models.FeatBeta] = 99
	if Defaults()[models.FeatBeta] == 99 {
		t.Fatal("Defaults must return a copy")
	}
}
