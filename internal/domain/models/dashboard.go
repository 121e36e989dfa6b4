package models

import "time"

// GaugeBand is one colored segment on the score gauge.
type GaugeBand struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// GaugeSpec describes the score gauge widget.
type GaugeSpec struct {
	Value float64     `json:"value"`
	Color string      `json:"color"`
	Bands []GaugeBand `json:"bands"`
}

// BarEntry is one ranked bar in the feature-impact chart. Entries arrive in
// explanation order (most influential first).
type BarEntry struct {
	Feature string  `json:"feature"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Impact  Impact  `json:"impact"`
}

// RadarAxis is one financial dimension scaled to 0..100.
type RadarAxis struct {
	Axis  string  `json:"axis"`
	Value float64 `json:"value"`
}

// TrendPoint is a single dated score sample.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// TrendSeries is the score history line. Synthetic is true when the points
// were generated for demo purposes rather than read from real history; the
// rendering layer must not present a synthetic series as real.
type TrendSeries struct {
	Points    []TrendPoint `json:"points"`
	Synthetic bool         `json:"synthetic"`
}

// DashboardBundle is the chart-description bundle handed to the rendering
// layer. Fixed schema of named numeric fields and labeled sequences; the
// renderer owns everything visual.
type DashboardBundle struct {
	Ticker      string       `json:"ticker"`
	Name        string       `json:"name"`
	Sector      string       `json:"sector"`
	Risk        RiskCategory `json:"risk"`
	RiskDetail  string       `json:"risk_detail"`
	Summary     string       `json:"summary"`
	Degraded    bool         `json:"degraded"`
	Gauge       GaugeSpec    `json:"gauge"`
	Bars        []BarEntry   `json:"bars"`
	Radar       []RadarAxis  `json:"radar"`
	Trend       TrendSeries  `json:"trend"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// LiveFrame is one message on the live score stream. Frames are always
// simulated; Synthetic is carried explicitly so no client can mistake the
// walk for real monitoring data.
type LiveFrame struct {
	Ticker    string       `json:"ticker"`
	Score     float64      `json:"score"`
	Risk      RiskCategory `json:"risk"`
	Event     string       `json:"event,omitempty"`
	Synthetic bool         `json:"synthetic"`
	Timestamp time.Time    `json:"timestamp"`
}

// ScoreEvent is the JSON payload published to the event backend per
// produced ScoreResult.
type ScoreEvent struct {
	RequestID   string       `json:"request_id"`
	Ticker      string       `json:"ticker"`
	Score       float64      `json:"score"`
	Risk        RiskCategory `json:"risk"`
	Degraded    bool         `json:"degraded"`
	GeneratedAt time.Time    `json:"generated_at"`
}
