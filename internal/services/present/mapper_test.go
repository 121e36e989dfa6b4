package present

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/features"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return l
}

type fakeHistory struct {
	points  []models.TrendPoint
	err     error
	lastCtx context.Context
}

func (f *fakeHistory) Record(ctx context.Context, r models.ScoreResult) error { return nil }

func (f *fakeHistory) Recent(ctx context.Context, ticker string, since time.Time) ([]models.TrendPoint, error) {
	f.lastCtx = ctx
	return f.points, f.err
}

func (f *fakeHistory) Close() error { return nil }

func TestGaugeBands(t *testing.T) {
	g := Gauge(82)

	if g.Value != 82 {
		t.Fatalf("value = %v, want 82", g.Value)
	}
	if g.Color != models.RiskLow.Color() {
		t.Errorf("color = %q, want low-risk color", g.Color)
	}
	if len(g.Bands) != 4 {
		t.Fatalf("bands = %d, want 4", len(g.Bands))
	}
	if g.Bands[0].From != 0 || g.Bands[len(g.Bands)-1].To != 100 {
		t.Errorf("bands do not span 0..100: %+v", g.Bands)
	}
	for i := 1; i < len(g.Bands); i++ {
		if g.Bands[i].From != g.Bands[i-1].To {
			t.Errorf("gap between band %d and %d: %+v", i-1, i, g.Bands)
		}
	}
}

func TestGaugeColorPerRisk(t *testing.T) {
	cases := []struct {
		score float64
		want  models.RiskCategory
	}{
		{85, models.RiskLow},
		{60, models.RiskMedium},
		{40, models.RiskHigh},
		{10, models.RiskVeryHigh},
	}
	for _, c := range cases {
		if got := Gauge(c.score).Color; got != c.want.Color() {
			t.Errorf("Gauge(%v).Color = %q, want %q", c.score, got, c.want.Color())
		}
	}
}

func TestBarsSkipsNeutralAndTruncates(t *testing.T) {
	exp := models.Explanation{}
	for i := 0; i < MaxBars+3; i++ {
		exp.Contributions = append(exp.Contributions, models.Contribution{
			Feature: models.FeatureOrder[i%len(models.FeatureOrder)],
			Value:   float64(10 - i),
			Impact:  models.ImpactPositive,
		})
	}
	exp.Contributions = append(exp.Contributions, models.Contribution{
		Feature: models.FeatBeta, Value: 0, Impact: models.ImpactNeutral,
	})

	bars := Bars(exp)
	if len(bars) != MaxBars {
		t.Fatalf("len(bars) = %d, want %d", len(bars), MaxBars)
	}
	for _, b := range bars {
		if b.Impact == models.ImpactNeutral {
			t.Errorf("neutral contribution leaked into bars: %+v", b)
		}
		if b.Label == "" {
			t.Errorf("bar for %s has empty label", b.Feature)
		}
	}
	// Order must follow the explanation ranking.
	if bars[0].Value != 10 || bars[1].Value != 9 {
		t.Errorf("bars lost explanation order: %+v", bars[:2])
	}
}

func TestBarsAllBaselineEmpty(t *testing.T) {
	exp := models.Explanation{}
	for _, f := range models.FeatureOrder {
		exp.Contributions = append(exp.Contributions, models.Contribution{
			Feature: f, Impact: models.ImpactNeutral,
		})
	}
	if bars := Bars(exp); len(bars) != 0 {
		t.Fatalf("expected empty chart for all-baseline vector, got %d bars", len(bars))
	}
}

func TestRadarAxes(t *testing.T) {
	radar := Radar(features.Defaults())

	want := []string{"Liquidity", "Profitability", "Leverage", "Growth", "Market", "Sentiment"}
	if len(radar) != len(want) {
		t.Fatalf("len(radar) = %d, want %d", len(radar), len(want))
	}
	for i, axis := range radar {
		if axis.Axis != want[i] {
			t.Errorf("axis[%d] = %q, want %q", i, axis.Axis, want[i])
		}
		if axis.Value < 0 || axis.Value > 100 {
			t.Errorf("axis %s value %v out of [0,100]", axis.Axis, axis.Value)
		}
	}
}

func TestRadarReflectsInputs(t *testing.T) {
	strong := features.Defaults()
	strong[models.FeatCurrentRatio] = 3.0
	strong[models.FeatQuickRatio] = 2.5

	weak := features.Defaults()
	weak[models.FeatCurrentRatio] = 0.4
	weak[models.FeatQuickRatio] = 0.3

	if Radar(strong)[0].Value <= Radar(weak)[0].Value {
		t.Error("liquidity axis did not separate strong from weak inputs")
	}
}

func TestSyntheticTrendDeterministic(t *testing.T) {
	tb := NewTrendBuilder(nil, testLogger(t))
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	a := tb.Series(context.Background(), "AAPL", 72.5, 30, now)
	b := tb.Series(context.Background(), "AAPL", 72.5, 30, now)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("synthetic series not deterministic for the same ticker")
	}
	if !a.Synthetic {
		t.Error("synthetic series must be flagged")
	}
	if len(a.Points) != 30 {
		t.Fatalf("len(points) = %d, want 30", len(a.Points))
	}
	last := a.Points[len(a.Points)-1]
	if last.Score != 72.5 {
		t.Errorf("last point = %v, want exactly the current score", last.Score)
	}
	for i, p := range a.Points {
		if p.Score < 0 || p.Score > 100 {
			t.Errorf("point %d score %v out of range", i, p.Score)
		}
		if i > 0 && !p.Date.After(a.Points[i-1].Date) {
			t.Errorf("points not oldest first at %d", i)
		}
	}
}

func TestSyntheticTrendVariesByTicker(t *testing.T) {
	tb := NewTrendBuilder(nil, testLogger(t))
	now := time.Now()

	a := tb.Series(context.Background(), "AAPL", 60, 30, now)
	b := tb.Series(context.Background(), "MSFT", 60, 30, now)
	if reflect.DeepEqual(a.Points, b.Points) {
		t.Error("different tickers produced identical walks")
	}
}

func TestTrendUsesRealHistory(t *testing.T) {
	store := &fakeHistory{points: []models.TrendPoint{
		{Date: time.Now().AddDate(0, 0, -2), Score: 55},
		{Date: time.Now().AddDate(0, 0, -1), Score: 58},
	}}
	tb := NewTrendBuilder(store, testLogger(t))

	s := tb.Series(context.Background(), "AAPL", 58, 30, time.Now())
	if s.Synthetic {
		t.Fatal("expected real series when enough samples exist")
	}
	if !reflect.DeepEqual(s.Points, store.points) {
		t.Errorf("real points not passed through: %+v", s.Points)
	}
}

func TestTrendFallsBackOnSparseOrFailingStore(t *testing.T) {
	sparse := &fakeHistory{points: []models.TrendPoint{{Date: time.Now(), Score: 50}}}
	if s := NewTrendBuilder(sparse, testLogger(t)).Series(context.Background(), "AAPL", 50, 14, time.Now()); !s.Synthetic {
		t.Error("single sample should fall back to synthetic")
	}

	failing := &fakeHistory{err: errors.New("clickhouse down")}
	if s := NewTrendBuilder(failing, testLogger(t)).Series(context.Background(), "AAPL", 50, 14, time.Now()); !s.Synthetic {
		t.Error("store error should fall back to synthetic")
	}
}

func TestTrendPassesCallerContext(t *testing.T) {
	store := &fakeHistory{points: []models.TrendPoint{
		{Date: time.Now().AddDate(0, 0, -2), Score: 55},
		{Date: time.Now().AddDate(0, 0, -1), Score: 58},
	}}
	tb := NewTrendBuilder(store, testLogger(t))

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "dashboard")
	tb.Series(ctx, "AAPL", 58, 30, time.Now())

	if store.lastCtx == nil {
		t.Fatal("store never queried")
	}
	if store.lastCtx.Value(ctxKey{}) != "dashboard" {
		t.Error("history read did not receive the caller's context")
	}
}

func TestDashboardAssembly(t *testing.T) {
	tb := NewTrendBuilder(nil, testLogger(t))
	m := NewMapper(tb)

	fv := features.Defaults()
	fv[models.FeatCurrentRatio] = 2.4
	card := models.ScoreCard{
		Company: models.CompanyRecord{Ticker: "ACME", Name: "Acme Corp", Sector: "Industrials"},
		Result: models.ScoreResult{
			Ticker: "ACME", Score: 74.2, Risk: models.RiskLow, Degraded: true,
		},
		Features: fv,
		Explanation: models.Explanation{
			Summary: "Acme Corp scores 74.2 out of 100.",
			Contributions: []models.Contribution{
				{Feature: models.FeatCurrentRatio, Value: 4.1, Impact: models.ImpactPositive},
			},
		},
	}

	now := time.Now()
	b := m.Dashboard(context.Background(), card, 30, now)

	if b.Ticker != "ACME" || b.Name != "Acme Corp" || b.Sector != "Industrials" {
		t.Errorf("identity fields wrong: %+v", b)
	}
	if !b.Degraded {
		t.Error("degraded flag dropped")
	}
	if b.Gauge.Value != 74.2 {
		t.Errorf("gauge value = %v", b.Gauge.Value)
	}
	if len(b.Bars) != 1 || b.Bars[0].Feature != models.FeatCurrentRatio {
		t.Errorf("bars wrong: %+v", b.Bars)
	}
	if len(b.Radar) != 6 {
		t.Errorf("radar axes = %d, want 6", len(b.Radar))
	}
	if len(b.Trend.Points) != 30 || !b.Trend.Synthetic {
		t.Errorf("trend wrong: %d points, synthetic=%v", len(b.Trend.Points), b.Trend.Synthetic)
	}
	if b.Summary == "" {
		t.Error("summary dropped")
	}
	if !b.GeneratedAt.Equal(now) {
		t.Error("generated-at not stamped")
	}
}
