package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
)

type recordingStore struct {
	mu      sync.Mutex
	results []models.ScoreResult
	failN   int
}

func (s *recordingStore) Record(ctx context.Context, r models.ScoreResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failN > 0 {
		s.failN--
		return errors.New("store unavailable")
	}
	s.results = append(s.results, r)
	return nil
}

func (s *recordingStore) Recent(ctx context.Context, ticker string, since time.Time) ([]models.TrendPoint, error) {
	return nil, nil
}

func (s *recordingStore) Close() error { return nil }

func (s *recordingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.ScoreEvent
}

func (p *recordingPublisher) PublishScore(ctx context.Context, ev models.ScoreEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type countingMetrics struct {
	mu     sync.Mutex
	scores int
	errs   map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{errs: make(map[string]int)}
}

func (m *countingMetrics) RecordScore(risk string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores++
}

func (m *countingMetrics) RecordLastScore(ticker string, score float64) {}

func (m *countingMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[kind]++
}

func (m *countingMetrics) RecordLatency(op string, seconds float64) {}

func (m *countingMetrics) errCount(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errs[kind]
}

func sample(ticker string, score float64) models.ScoreResult {
	return models.ScoreResult{
		RequestID:   "req-" + ticker,
		Ticker:      ticker,
		Score:       score,
		Risk:        models.RiskFromScore(score),
		GeneratedAt: time.Now().UTC(),
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestPipelineDeliversAsync(t *testing.T) {
	store := &recordingStore{}
	pub := &recordingPublisher{}
	m := newCountingMetrics()

	p := NewScorePipeline(store, pub, m)
	p.Start(context.Background())
	defer p.Stop()

	p.Process(sample("AAPL", 72))
	p.Process(sample("MSFT", 81))

	waitFor(t, func() bool { return store.count() == 2 && pub.count() == 2 })

	if m.scores != 2 {
		t.Errorf("score metric = %d, want 2", m.scores)
	}
	pub.mu.Lock()
	ev := pub.events[0]
	pub.mu.Unlock()
	if ev.Ticker == "" || ev.RequestID == "" {
		t.Errorf("event missing identity: %+v", ev)
	}
}

func TestPipelineRetriesFailedDelivery(t *testing.T) {
	store := &recordingStore{failN: 1}
	m := newCountingMetrics()

	p := NewScorePipeline(store, nil, m)
	p.Start(context.Background())
	defer p.Stop()

	p.Process(sample("AAPL", 60))

	// First delivery fails, the result is requeued and the retry lands.
	waitFor(t, func() bool { return store.count() == 1 })
	if m.errCount("pipeline_deliver") == 0 {
		t.Error("failed delivery not counted")
	}
}

func TestPipelineFullBufferDrops(t *testing.T) {
	m := newCountingMetrics()
	p := NewScorePipeline(&recordingStore{}, nil, m, WithBufferSize(1))
	// Worker not started, so the buffer fills immediately.

	p.Process(sample("AAPL", 50))
	p.Process(sample("MSFT", 51))

	if m.errCount("pipeline_buffer_full") != 1 {
		t.Errorf("drop metric = %d, want 1", m.errCount("pipeline_buffer_full"))
	}
}

func TestPipelineStopIsIdempotent(t *testing.T) {
	p := NewScorePipeline(&recordingStore{}, nil, newCountingMetrics())
	p.Start(context.Background())
	p.Stop()
	p.Stop()
}
