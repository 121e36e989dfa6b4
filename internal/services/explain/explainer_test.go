package explain

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/features"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/scoring"
)

func newTestExplainer(t *testing.T) (*scoring.Model, *Explainer) {
	t.Helper()
	m, err := scoring.NewModel(scoring.NewHeuristic())
	if err != nil {
		t.Fatal(err)
	}
	return m, New(m)
}

func strongVector() models.FeatureVector {
	fv := features.Defaults()
	fv[models.FeatCurrentRatio] = 2.4
	fv[models.FeatDebtToEquity] = 25
	fv[models.FeatProfitMargin] = 18
	fv[models.FeatSentimentScore] = -0.6
	return fv
}

func TestContributionsSumToScoreMinusBaseline(t *testing.T) {
	m, e := newTestExplainer(t)
	fv := strongVector()

	exp, err := e.Explain(fv)
	if err != nil {
		t.Fatal(err)
	}
	score, err := m.Score(fv)
	if err != nil {
		t.Fatal(err)
	}

	var sum float64
	for _, c := range exp.Contributions {
		sum += c.Value
	}
	if math.Abs(sum-(score-exp.Baseline)) > 1e-9 {
		t.Fatalf("contributions sum %v, want %v", sum, score-exp.Baseline)
	}
}

func TestExplainDeterministic(t *testing.T) {
	_, e := newTestExplainer(t)
	fv := strongVector()

	a, err := e.Explain(fv)
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Explain(fv.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical vectors produced different explanations")
	}
}

func TestExplainOrderedByMagnitude(t *testing.T) {
	_, e := newTestExplainer(t)
	exp, err := e.Explain(strongVector())
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(exp.Contributions); i++ {
		prev := math.Abs(exp.Contributions[i-1].Value)
		cur := math.Abs(exp.Contributions[i].Value)
		if cur > prev {
			t.Fatalf("contribution %d (%v) larger than %d (%v)", i, cur, i-1, prev)
		}
	}
}

type linearRegressor struct {
	weights []float64
}

func (l linearRegressor) Predict(vals []float64) float64 {
	out := 50.0
	for i, w := range l.weights {
		out += w * vals[i]
	}
	return out
}

func (l linearRegressor) NumFeatures() int { return len(l.weights) }

func (l linearRegressor) Name() string { return "linear" }

func TestExplainTieBreakKeepsCanonicalOrder(t *testing.T) {
	weights := make([]float64, len(models.FeatureOrder))
	for i, name := range models.FeatureOrder {
		if name == models.FeatRevenueGrowth || name == models.FeatEarningsGrowth {
			weights[i] = 0.5
		}
	}
	m, err := scoring.NewModel(linearRegressor{weights: weights})
	if err != nil {
		t.Fatal(err)
	}
	e := New(m)

	fv := features.Defaults()
	fv[models.FeatRevenueGrowth] = 6
	fv[models.FeatEarningsGrowth] = 6

	exp, err := e.Explain(fv)
	if err != nil {
		t.Fatal(err)
	}
	if len(exp.Contributions) < 2 {
		t.Fatalf("expected full contribution list, got %d entries", len(exp.Contributions))
	}
	first, second := exp.Contributions[0], exp.Contributions[1]
	if math.Abs(math.Abs(first.Value)-math.Abs(second.Value)) > 1e-12 {
		t.Fatalf("expected equal magnitudes, got %v and %v", first.Value, second.Value)
	}
	if first.Value <= 0 {
		t.Fatalf("equal growth bumps should contribute positively, got %v", first.Value)
	}
	if first.Feature != models.FeatRevenueGrowth || second.Feature != models.FeatEarningsGrowth {
		t.Fatalf("equal magnitudes should keep canonical order, got %s then %s", first.Feature, second.Feature)
	}
}

func TestExplainAllBaselineIsNeutral(t *testing.T) {
	_, e := newTestExplainer(t)
	exp, err := e.Explain(features.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range exp.Contributions {
		if c.Impact != models.ImpactNeutral {
			t.Fatalf("feature %s has impact %s on the baseline vector", c.Feature, c.Impact)
		}
	}
}

func TestExplainImpactSigns(t *testing.T) {
	_, e := newTestExplainer(t)
	fv := features.Defaults()
	fv[models.FeatCurrentRatio] = 2.8 // well above neutral
	fv[models.FeatDebtToEquity] = 190 // heavy leverage

	exp, err := e.Explain(fv)
	if err != nil {
		t.Fatal(err)
	}
	byFeature := make(map[string]models.Contribution)
	for _, c := range exp.Contributions {
		byFeature[c.Feature] = c
	}
	if byFeature[models.FeatCurrentRatio].Impact != models.ImpactPositive {
		t.Fatalf("strong liquidity should be positive, got %s", byFeature[models.FeatCurrentRatio].Impact)
	}
	if byFeature[models.FeatDebtToEquity].Impact != models.ImpactNegative {
		t.Fatalf("heavy leverage should be negative, got %s", byFeature[models.FeatDebtToEquity].Impact)
	}
}

func TestExplainMissingKey(t *testing.T) {
	_, e := newTestExplainer(t)
	fv := features.Defaults()
	delete(fv, models.FeatQuickRatio)
	if _, err := e.Explain(fv); err == nil {
		t.Fatal("expected error for incomplete vector")
	}
}

func TestSummarizeMentionsDrivers(t *testing.T) {
	m, e := newTestExplainer(t)
	fv := strongVector()

	exp, err := e.Explain(fv)
	if err != nil {
		t.Fatal(err)
	}
	res, err := m.Result("ACME", fv, false)
	if err != nil {
		t.Fatal(err)
	}

	s := Summarize(res, exp)
	if !strings.Contains(s, "ACME") {
		t.Fatalf("summary misses ticker: %q", s)
	}
	if !strings.Contains(s, "Strengths:") || !strings.Contains(s, "Concerns:") {
		t.Fatalf("summary misses driver sections: %q", s)
	}
}

func TestSummarizeDegradedNote(t *testing.T) {
	m, e := newTestExplainer(t)
	fv := strongVector()
	exp, err := e.Explain(fv)
	if err != nil {
		t.Fatal(err)
	}
	res, err := m.Result("ACME", fv, true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(Summarize(res, exp), "neutral substitutes") {
		t.Fatal("degraded summary should disclose substituted inputs")
	}
}
