package scoring

import (
	"testing"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
)

func TestNormalizeKnots(t *testing.T) {
	cases := []struct {
		feature string
		in      float64
		want    float64
	}{
		{models.FeatCurrentRatio, 2.0, 80},
		{models.FeatCurrentRatio, 1.0, 40},
		{models.FeatCurrentRatio, 3.0, 100},
		{models.FeatDebtToEquity, 0, 100},
		{models.FeatDebtToEquity, 200, 0},
		{models.FeatSentimentScore, 0, 50},
		{models.FeatSentimentScore, 1, 100},
		{models.FeatSentimentScore, -1, 0},
	}
	for _, c := range cases {
		got := Normalize(c.feature, c.in)
		if got != c.want {
			t.Errorf("Normalize(%s, %v) = %v, want %v", c.feature, c.in, got, c.want)
		}
	}
}

func TestNormalizeInterpolates(t *testing.T) {
	// Halfway between the 1.5 (60) and 2.0 (80) knots.
	got := Normalize(models.FeatCurrentRatio, 1.75)
	if got < 69.9 || got > 70.1 {
		t.Fatalf("expected ~70, got %v", got)
	}
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	if got := Normalize(models.FeatCurrentRatio, -5); got != 0 {
		t.Fatalf("below first knot should clamp to first value, got %v", got)
	}
	if got := Normalize(models.FeatCurrentRatio, 50); got != 100 {
		t.Fatalf("above last knot should clamp to last value, got %v", got)
	}
}

func TestNormalizeUnknownFeature(t *testing.T) {
	if got := Normalize("no_such_feature", 42); got != 50 {
		t.Fatalf("unknown feature should be neutral 50, got %v", got)
	}
}

func TestNormalizeEveryFeatureBounded(t *testing.T) {
	for _, name := range models.FeatureOrder {
		for _, v := range []float64{-1e9, -1, 0, 0.5, 1, 15, 100, 1e9} {
			got := Normalize(name, v)
			if got < 0 || got > 100 {
				t.Errorf("Normalize(%s, %v) = %v out of [0,100]", name, v, got)
			}
		}
	}
}
