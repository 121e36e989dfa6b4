// Package sentiment scores headline polarity with a small finance lexicon.
// The analyzer is deterministic: identical text always yields the same
// polarity, which keeps the feature builder pure.
package sentiment

import "strings"

// Analyzer computes text polarity in [-1, 1].
type Analyzer struct{}

// NewAnalyzer creates a lexicon-backed analyzer.
func NewAnalyzer() *Analyzer { return &Analyzer{} }

// Polarity scores a single text. Unmatched vocabulary contributes nothing;
// a text with no matched words scores 0 (neutral).
func (a *Analyzer) Polarity(text string) float64 {
	words := tokenize(text)
	if len(words) == 0 {
		return 0
	}

	var sum float64
	var matched int
	negate := false
	for _, w := range words {
		if negators[w] {
			negate = true
			continue
		}
		v, ok := lexicon[w]
		if !ok {
			continue
		}
		if negate {
			v = -v
			negate = false
		}
		sum += v
		matched++
	}
	if matched == 0 {
		return 0
	}
	return clamp(sum/float64(matched), -1, 1)
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
