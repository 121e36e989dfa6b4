package models

import "testing"

func TestRiskFromScoreBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  RiskCategory
	}{
		{100, RiskLow},
		{70, RiskLow},
		{69.999, RiskMedium},
		{50, RiskMedium},
		{49.999, RiskHigh},
		{30, RiskHigh},
		{29.999, RiskVeryHigh},
		{0, RiskVeryHigh},
	}
	for _, c := range cases {
		if got := RiskFromScore(c.score); got != c.want {
			t.Errorf("RiskFromScore(%v) = %v, want %v", c.score, got, c.want)
		}
	}
}

func TestRiskColors(t *testing.T) {
	cases := map[RiskCategory]string{
		RiskLow:      "#00C851",
		RiskMedium:   "#ffbb33",
		RiskHigh:     "#ff4444",
		RiskVeryHigh: "#CC0000",
	}
	for risk, want := range cases {
		if got := risk.Color(); got != want {
			t.Errorf("%v color = %v, want %v", risk, got, want)
		}
	}
}

func TestValidTicker(t *testing.T) {
	valid := []string{"AAPL", "msft", "BRK.B", "RDS-A", "A"}
	for _, s := range valid {
		if !ValidTicker(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	invalid := []string{"", " ", "123", ".ABC", "TOOLONGSYMBOL", "AA PL", "AAPL;DROP"}
	for _, s := range invalid {
		if ValidTicker(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestNormalizeTicker(t *testing.T) {
	if got := NormalizeTicker("  aapl "); got != "AAPL" {
		t.Fatalf("NormalizeTicker = %q", got)
	}
}

func TestFeatureVectorProject(t *testing.T) {
	fv := make(FeatureVector, len(FeatureOrder))
	for i, name := range FeatureOrder {
		fv[name] = float64(i)
	}
	vals, ok := fv.Project()
	if !ok {
		t.Fatal("expected complete projection")
	}
	for i := range vals {
		if vals[i] != float64(i) {
			t.Fatalf("position %d: got %v", i, vals[i])
		}
	}

	delete(fv, FeatBeta)
	if _, ok := fv.Project(); ok {
		t.Fatal("projection must fail on a missing key")
	}
}

func TestExplanationTop(t *testing.T) {
	exp := Explanation{Contributions: []Contribution{
		{Feature: "a", Value: 5, Impact: ImpactPositive},
		{Feature: "b", Value: -4, Impact: ImpactNegative},
		{Feature: "c", Value: 3, Impact: ImpactPositive},
		{Feature: "d", Value: 0, Impact: ImpactNeutral},
	}}
	ups := exp.Top(1, ImpactPositive)
	if len(ups) != 1 || ups[0].Feature != "a" {
		t.Fatalf("Top positive = %+v", ups)
	}
	downs := exp.Top(5, ImpactNegative)
	if len(downs) != 1 || downs[0].Feature != "b" {
		t.Fatalf("Top negative = %+v", downs)
	}
}
