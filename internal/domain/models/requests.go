package models

// Requests for the scoring HTTP endpoints. Defined in domain for consistency
// and reuse across handlers.

type ScoreRequest struct {
	Ticker string `query:"ticker" json:"ticker" validate:"required,max=10"`
}

type DashboardRequest struct {
	Ticker string `query:"ticker" json:"ticker" validate:"required,max=10"`
	Days   int    `query:"days" json:"days" default:"30" validate:"gte=7,lte=90"`
}

type CompareRequest struct {
	// Comma-separated list, 2..10 symbols.
	Tickers string `query:"tickers" json:"tickers" validate:"required"`
}

type LiveRequest struct {
	Ticker string `query:"ticker" json:"ticker" validate:"required,max=10"`
}
