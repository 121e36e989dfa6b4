package scoring

import "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"

// breakpoint is one knot of a piecewise-linear mapping from raw feature
// value to a 0..100 health score.
type breakpoint struct {
	x float64
	y float64
}

// Per-feature ratio-to-score mappings. The heuristic regressor blends these
// into the main score and the radar axes reuse them unchanged, so the two
// views stay consistent. Knots follow the original bucket boundaries
// (current ratio 1/1.5/2, debt-to-equity 30/50/100, ROE 5/10/15, ...).
var scales = map[string][]breakpoint{
	models.FeatCurrentRatio:    {{0, 0}, {1, 40}, {1.5, 60}, {2, 80}, {3, 100}},
	models.FeatQuickRatio:      {{0, 0}, {0.5, 30}, {1, 55}, {2, 100}},
	models.FeatDebtToEquity:    {{0, 100}, {30, 85}, {50, 70}, {100, 40}, {200, 0}},
	models.FeatReturnOnEquity:  {{-10, 0}, {0, 30}, {5, 50}, {10, 65}, {15, 80}, {25, 100}},
	models.FeatReturnOnAssets:  {{-5, 0}, {0, 30}, {5, 60}, {10, 80}, {15, 100}},
	models.FeatProfitMargin:    {{-10, 0}, {0, 30}, {5, 50}, {10, 65}, {20, 85}, {30, 100}},
	models.FeatOperatingMargin: {{-10, 0}, {0, 30}, {5, 50}, {10, 65}, {20, 85}, {30, 100}},
	models.FeatRevenueGrowth:   {{-20, 0}, {-10, 20}, {0, 45}, {10, 70}, {25, 100}},
	models.FeatEarningsGrowth:  {{-20, 0}, {-10, 20}, {0, 45}, {10, 70}, {25, 100}},
	models.FeatPriceToBook:     {{0, 80}, {1, 75}, {4, 55}, {10, 35}, {30, 0}},
	models.FeatPriceToEarnings: {{0, 80}, {5, 80}, {15, 65}, {30, 45}, {60, 20}, {100, 0}},
	models.FeatBeta:            {{0, 100}, {0.5, 90}, {1, 70}, {1.5, 45}, {2, 25}, {3, 0}},
	models.FeatMarketCapLog:    {{5, 0}, {7, 20}, {9, 55}, {11, 85}, {12, 100}},
	models.FeatSentimentScore:  {{-1, 0}, {0, 50}, {1, 100}},
}

// Normalize maps a raw feature value onto the 0..100 health scale for that
// feature. Unknown names map to the neutral 50.
func Normalize(feature string, v float64) float64 {
	knots, ok := scales[feature]
	if !ok {
		return 50
	}
	if v <= knots[0].x {
		return knots[0].y
	}
	last := knots[len(knots)-1]
	if v >= last.x {
		return last.y
	}
	for i := 1; i < len(knots); i++ {
		if v <= knots[i].x {
			lo, hi := knots[i-1], knots[i]
			t := (v - lo.x) / (hi.x - lo.x)
			return lo.y + t*(hi.y-lo.y)
		}
	}
	return last.y
}
