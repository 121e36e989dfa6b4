package models

// Impact classifies the sign of a contribution for presentation.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// Contribution is one feature's signed effect on the score relative to the
// model baseline.
type Contribution struct {
	Feature string  `json:"feature"`
	Value   float64 `json:"value"`
	Impact  Impact  `json:"impact"`
}

// Explanation is the ordered attribution for one ScoreResult. Contributions
// are sorted by descending absolute value with a stable tie-break on the
// canonical feature order; their sum reconciles with score minus baseline.
// The ordering is a presentation contract consumed directly by charts.
type Explanation struct {
	Baseline      float64        `json:"baseline"`
	Contributions []Contribution `json:"contributions"`
	Summary       string         `json:"summary,omitempty"`
}

// Top returns up to n contributions matching the given impact, preserving
// the ranked order.
func (e Explanation) Top(n int, impact Impact) []Contribution {
	out := make([]Contribution, 0, n)
	for _, c := range e.Contributions {
		if c.Impact != impact {
			continue
		}
		out = append(out, c)
		if len(out) == n {
			break
		}
	}
	return out
}
