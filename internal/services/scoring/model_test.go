package scoring

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/features"
)

func TestHeuristicWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, w := range heuristicWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("weights sum to %v, want 1.0", sum)
	}
	if len(heuristicWeights) != len(models.FeatureOrder) {
		t.Fatalf("weights cover %d features, schema has %d", len(heuristicWeights), len(models.FeatureOrder))
	}
}

func TestModelScoreDeterministic(t *testing.T) {
	m, err := NewModel(NewHeuristic())
	if err != nil {
		t.Fatal(err)
	}
	fv := features.Defaults()
	fv[models.FeatCurrentRatio] = 2.5
	fv[models.FeatReturnOnEquity] = 18

	a, err := m.Score(fv)
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Score(fv)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same vector scored differently: %v vs %v", a, b)
	}
	if a < 0 || a > 100 {
		t.Fatalf("score %v out of range", a)
	}
}

func TestModelScoreMissingKey(t *testing.T) {
	m, err := NewModel(NewHeuristic())
	if err != nil {
		t.Fatal(err)
	}
	fv := features.Defaults()
	delete(fv, models.FeatBeta)

	if _, err := m.Score(fv); !errors.Is(err, models.ErrModelInputMismatch) {
		t.Fatalf("expected ErrModelInputMismatch, got %v", err)
	}
}

func TestModelBaselineIsDefaultsScore(t *testing.T) {
	m, err := NewModel(NewHeuristic())
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Score(features.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if got != m.Baseline() {
		t.Fatalf("defaults score %v != baseline %v", got, m.Baseline())
	}
}

func TestModelResultStamps(t *testing.T) {
	m, err := NewModel(NewHeuristic())
	if err != nil {
		t.Fatal(err)
	}
	res, err := m.Result("AAPL", features.Defaults(), true)
	if err != nil {
		t.Fatal(err)
	}
	if res.RequestID == "" {
		t.Fatal("expected request id")
	}
	if res.Ticker != "AAPL" {
		t.Fatalf("ticker %q", res.Ticker)
	}
	if !res.Degraded {
		t.Fatal("degraded flag lost")
	}
	if res.Risk != models.RiskFromScore(res.Score) {
		t.Fatalf("risk %v inconsistent with score %v", res.Risk, res.Score)
	}
	if res.GeneratedAt.IsZero() {
		t.Fatal("expected timestamp")
	}
}

type fixedRegressor struct{ n int }

func (f fixedRegressor) Predict([]float64) float64 { return 50 }
func (f fixedRegressor) NumFeatures() int          { return f.n }
func (f fixedRegressor) Name() string              { return "fixed" }

type constRegressor struct{ out float64 }

func (c constRegressor) Predict([]float64) float64 { return c.out }

func (c constRegressor) NumFeatures() int { return len(models.FeatureOrder) }

func (c constRegressor) Name() string { return "const" }

func TestModelScoreClamped(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{raw: 250, want: 100},
		{raw: 100.01, want: 100},
		{raw: -40, want: 0},
		{raw: -0.01, want: 0},
		{raw: 64, want: 64},
	}
	for _, tc := range cases {
		m, err := NewModel(constRegressor{out: tc.raw})
		if err != nil {
			t.Fatal(err)
		}
		got, err := m.Score(features.Defaults())
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("raw %v: score %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestConcurrentScoringSharedModel(t *testing.T) {
	m, err := NewModel(NewHeuristic())
	if err != nil {
		t.Fatal(err)
	}
	strong := features.Defaults()
	strong[models.FeatCurrentRatio] = 2.5
	strong[models.FeatProfitMargin] = 22
	weak := features.Defaults()
	weak[models.FeatCurrentRatio] = 0.6
	weak[models.FeatProfitMargin] = -5

	wantStrong, err := m.Score(strong)
	if err != nil {
		t.Fatal(err)
	}
	wantWeak, err := m.Score(weak)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 8; i++ {
		fv, want := strong, wantStrong
		if i%2 == 1 {
			fv, want = weak, wantWeak
		}
		wg.Add(1)
		go func(fv models.FeatureVector, want float64) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got, err := m.Score(fv)
				if err != nil {
					select {
					case errs <- err:
					default:
					}
					return
				}
				if got != want {
					select {
					case errs <- fmt.Errorf("concurrent score %v, want %v", got, want):
					default:
					}
					return
				}
			}
		}(fv, want)
	}
	wg.Wait()
	select {
	case err := <-errs:
		t.Fatal(err)
	default:
	}
}

func TestNewModelRejectsWrongWidth(t *testing.T) {
	_, err := NewModel(fixedRegressor{n: 3})
	if !errors.Is(err, models.ErrModelInputMismatch) {
		t.Fatalf("expected ErrModelInputMismatch, got %v", err)
	}
}

func TestStrongerFundamentalsScoreHigher(t *testing.T) {
	m, err := NewModel(NewHeuristic())
	if err != nil {
		t.Fatal(err)
	}
	weak := features.Defaults()
	weak[models.FeatCurrentRatio] = 0.6
	weak[models.FeatDebtToEquity] = 180
	weak[models.FeatProfitMargin] = -5

	strong := features.Defaults()
	strong[models.FeatCurrentRatio] = 2.5
	strong[models.FeatDebtToEquity] = 20
	strong[models.FeatProfitMargin] = 22

	ws, err := m.Score(weak)
	if err != nil {
		t.Fatal(err)
	}
	ss, err := m.Score(strong)
	if err != nil {
		t.Fatal(err)
	}
	if ss <= ws {
		t.Fatalf("strong fundamentals %v should beat weak %v", ss, ws)
	}
}
