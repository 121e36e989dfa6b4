package models

import "errors"

var (
	// ErrInvalidTicker marks user input that fails symbol validation.
	// Surfaced directly to the caller.
	ErrInvalidTicker = errors.New("invalid ticker")

	// ErrDataUnavailable marks an unreachable or rate-limited source after
	// degradation was attempted. Recoverable at the collector boundary for
	// the news feed; fatal for the request when the financial source fails.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrModelInputMismatch marks schema drift between the feature vector
	// and the trained model ordering. A defect, never recoverable at
	// runtime; aborts the request.
	ErrModelInputMismatch = errors.New("model input mismatch")
)
