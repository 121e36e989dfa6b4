// Package middleware holds the asynchronous fan-out stage between the
// scoring path and the downstream backends (history store, event bus).
package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	domrepo "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/repository"
)

// ScorePipeline buffers produced score results and delivers them to the
// history store and the event publisher off the request path. A slow or
// down backend never blocks a scoring request; the buffer absorbs bursts
// and overflow is dropped with a metric.
type ScorePipeline struct {
	history   domrepo.HistoryStore
	publisher domrepo.EventPublisher
	metrics   domrepo.Metrics

	bufSize int
	bufCh   chan models.ScoreResult
	stopCh  chan struct{}
	started bool
	mu      sync.Mutex
	wg      sync.WaitGroup
}

type PipelineOption func(*ScorePipeline)

// WithBufferSize sets the result buffer capacity.
func WithBufferSize(n int) PipelineOption {
	return func(p *ScorePipeline) {
		if n > 0 {
			p.bufSize = n
		}
	}
}

// NewScorePipeline creates the fan-out pipeline.
func NewScorePipeline(history domrepo.HistoryStore, publisher domrepo.EventPublisher, metrics domrepo.Metrics, opts ...PipelineOption) *ScorePipeline {
	p := &ScorePipeline{
		history:   history,
		publisher: publisher,
		metrics:   metrics,
		bufSize:   1000,
		stopCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.bufCh = make(chan models.ScoreResult, p.bufSize)
	return p
}

// Start launches the background delivery worker.
func (p *ScorePipeline) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		backoff := 50 * time.Millisecond
		for {
			select {
			case <-p.stopCh:
				return
			case r := <-p.bufCh:
				if err := p.deliver(ctx, r); err != nil {
					if backoff < 2*time.Second {
						backoff *= 2
					}
					p.metrics.RecordError("pipeline_deliver")
					time.Sleep(backoff)
					// Requeue if space; drop otherwise.
					select {
					case p.bufCh <- r:
					default:
						p.metrics.RecordError("pipeline_buffer_drop")
					}
				} else {
					backoff = 50 * time.Millisecond
				}
			}
		}
	}()
}

// Stop halts delivery and waits for the worker to exit.
func (p *ScorePipeline) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.mu.Unlock()
	close(p.stopCh)
	p.wg.Wait()
}

// Process enqueues a result for async delivery. Never blocks; a full buffer
// drops the result and records the drop.
func (p *ScorePipeline) Process(r models.ScoreResult) {
	p.metrics.RecordScore(string(r.Risk))
	p.metrics.RecordLastScore(r.Ticker, r.Score)

	select {
	case p.bufCh <- r:
	default:
		p.metrics.RecordError("pipeline_buffer_full")
	}
}

func (p *ScorePipeline) deliver(ctx context.Context, r models.ScoreResult) error {
	start := time.Now()

	var firstErr error
	if p.history != nil {
		if err := p.history.Record(ctx, r); err != nil {
			firstErr = fmt.Errorf("history record: %w", err)
		}
	}
	if p.publisher != nil {
		ev := models.ScoreEvent{
			RequestID:   r.RequestID,
			Ticker:      r.Ticker,
			Score:       r.Score,
			Risk:        r.Risk,
			Degraded:    r.Degraded,
			GeneratedAt: r.GeneratedAt,
		}
		if err := p.publisher.PublishScore(ctx, ev); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("publish score: %w", err)
		}
	}

	p.metrics.RecordLatency("pipeline_deliver", time.Since(start).Seconds())
	return firstErr
}
