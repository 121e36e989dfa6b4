package sentiment

// Finance-leaning polarity lexicon. Values are in [-1, 1]; only words that
// carry signal for headline scoring are listed. Derived from the usual
// positive/negative word lists trimmed to the vocabulary seen in market news.
var lexicon = map[string]float64{
	// positive
	"beat":         0.7,
	"beats":        0.7,
	"strong":       0.6,
	"stronger":     0.6,
	"growth":       0.5,
	"grow":         0.4,
	"grows":        0.4,
	"record":       0.5,
	"surge":        0.8,
	"surges":       0.8,
	"soar":         0.8,
	"soars":        0.8,
	"rally":        0.6,
	"gain":         0.5,
	"gains":        0.5,
	"profit":       0.4,
	"profitable":   0.6,
	"upgrade":      0.7,
	"upgraded":     0.7,
	"outperform":   0.7,
	"exceed":       0.6,
	"exceeds":      0.6,
	"raise":        0.4,
	"raises":       0.4,
	"raised":       0.4,
	"positive":     0.5,
	"optimistic":   0.6,
	"bullish":      0.7,
	"expansion":    0.4,
	"acquisition":  0.2,
	"dividend":     0.3,
	"buyback":      0.4,
	"innovative":   0.4,
	"success":      0.6,
	"successful":   0.6,
	"improve":      0.5,
	"improves":     0.5,
	"improved":     0.5,
	"recovery":     0.4,
	"rebound":      0.5,
	"wins":         0.6,
	"win":          0.5,
	"approval":     0.5,
	"breakthrough": 0.7,

	// negative
	"miss":          -0.7,
	"misses":        -0.7,
	"missed":        -0.7,
	"weak":          -0.6,
	"weaker":        -0.6,
	"decline":       -0.5,
	"declines":      -0.5,
	"drop":          -0.5,
	"drops":         -0.5,
	"fall":          -0.5,
	"falls":         -0.5,
	"plunge":        -0.8,
	"plunges":       -0.8,
	"crash":         -0.9,
	"loss":          -0.5,
	"losses":        -0.5,
	"downgrade":     -0.7,
	"downgraded":    -0.7,
	"underperform":  -0.6,
	"cut":           -0.4,
	"cuts":          -0.4,
	"layoff":        -0.6,
	"layoffs":       -0.6,
	"lawsuit":       -0.6,
	"investigation": -0.6,
	"probe":         -0.5,
	"fraud":         -0.9,
	"default":       -0.8,
	"bankruptcy":    -0.9,
	"debt":          -0.2,
	"negative":      -0.5,
	"bearish":       -0.7,
	"pessimistic":   -0.6,
	"warning":       -0.5,
	"warns":         -0.5,
	"recall":        -0.5,
	"fine":          -0.3,
	"fined":         -0.5,
	"penalty":       -0.5,
	"slump":         -0.7,
	"slumps":        -0.7,
	"struggles":     -0.5,
	"struggling":    -0.5,
	"risk":          -0.2,
	"concern":       -0.4,
	"concerns":      -0.4,
	"downturn":      -0.6,
	"scandal":       -0.8,
	"delays":        -0.3,
	"delay":         -0.3,
}

// negators flip the sign of the following sentiment-bearing word.
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"without": true,
	"fails":   true,
	"failed":  true,
}
