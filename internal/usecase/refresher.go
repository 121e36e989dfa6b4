package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/queue"
)

// RefreshMessageType routes watchlist refresh messages to their job.
const RefreshMessageType = "score.refresh"

// RefreshPayload identifies the ticker to re-score.
type RefreshPayload struct {
	Ticker string `json:"ticker"`
}

// Refresher periodically enqueues every watchlist ticker so the history
// store keeps accumulating real trend samples.
type Refresher struct {
	watchlist []string
	interval  time.Duration
	q         queue.QueueService
	log       *logger.Logger

	stopCh  chan struct{}
	started bool
	mu      sync.Mutex
	wg      sync.WaitGroup
}

// NewRefresher creates the watchlist refresher. An empty watchlist or
// non-positive interval disables it.
func NewRefresher(watchlist []string, interval time.Duration, q queue.QueueService, log *logger.Logger) *Refresher {
	return &Refresher{
		watchlist: watchlist,
		interval:  interval,
		q:         q,
		log:       log,
		stopCh:    make(chan struct{}),
	}
}

// Start launches the periodic enqueue loop.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || len(r.watchlist) == 0 || r.interval <= 0 {
		return
	}
	r.started = true

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		r.enqueueAll(ctx)
		for {
			select {
			case <-r.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.enqueueAll(ctx)
			}
		}
	}()
	r.log.Info("watchlist refresher started",
		logger.Int("tickers", len(r.watchlist)),
		logger.Duration("interval", r.interval),
	)
}

// Stop halts the loop.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return
	}
	r.started = false
	r.mu.Unlock()
	close(r.stopCh)
	r.wg.Wait()
}

func (r *Refresher) enqueueAll(ctx context.Context) {
	for _, t := range r.watchlist {
		if err := r.q.PublishMessage(ctx, RefreshMessageType, RefreshPayload{Ticker: t}); err != nil {
			r.log.Warn("refresh enqueue failed",
				logger.String("ticker", t), logger.Error(err))
		}
	}
}

// RefreshJob consumes refresh messages and runs the scoring path for the
// ticker. The score card itself is discarded; the pipeline side effects
// (history, events) are the point.
type RefreshJob struct {
	scorecard *ScoreCardUsecase
	log       *logger.Logger
}

// NewRefreshJob creates the queue job for watchlist refreshes.
func NewRefreshJob(scorecard *ScoreCardUsecase, log *logger.Logger) *RefreshJob {
	return &RefreshJob{scorecard: scorecard, log: log}
}

func (j *RefreshJob) Name() string { return "watchlist-refresh" }
func (j *RefreshJob) Type() string { return RefreshMessageType }

func (j *RefreshJob) Handle(ctx context.Context, payload interface{}) error {
	p, err := queue.ParsePayload[RefreshPayload](payload)
	if err != nil {
		return err
	}
	if _, err := j.scorecard.Score(ctx, p.Ticker); err != nil {
		return err
	}
	return nil
}
