package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
)

// MemoryQueue is an in-process worker queue. Messages are dispatched to
// registered jobs by type, with bounded retries.
type MemoryQueue struct {
	logger    *logger.Logger
	config    *QueueConfig
	jobs      map[string]Job
	ch        chan *Message
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewMemoryQueue creates an in-memory queue.
func NewMemoryQueue(lgr *logger.Logger, config *QueueConfig) *MemoryQueue {
	if config == nil {
		config = &QueueConfig{}
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 100
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = 5 * time.Second
	}

	return &MemoryQueue{
		logger: lgr,
		config: config,
		jobs:   make(map[string]Job),
		ch:     make(chan *Message, config.QueueSize),
	}
}

// RegisterJob registers a job handler for its message type.
func (q *MemoryQueue) RegisterJob(job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, exists := q.jobs[job.Type()]; exists {
		return fmt.Errorf("job for type %q already registered", job.Type())
	}
	q.jobs[job.Type()] = job
	return nil
}

// Start launches the worker pool.
func (q *MemoryQueue) Start(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.isRunning {
		return fmt.Errorf("queue already running")
	}
	q.ctx, q.cancel = context.WithCancel(ctx)
	q.isRunning = true

	for i := 0; i < q.config.Workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	q.logger.Info("memory queue started", logger.Int("workers", q.config.Workers))
	return nil
}

// Stop drains the workers and waits for them to exit.
func (q *MemoryQueue) Stop() {
	q.mu.Lock()
	if !q.isRunning {
		q.mu.Unlock()
		return
	}
	q.isRunning = false
	q.mu.Unlock()

	q.cancel()
	q.wg.Wait()
	q.logger.Info("memory queue stopped")
}

// PublishMessage enqueues a message for processing. Returns an error when
// the queue is full or stopped.
func (q *MemoryQueue) PublishMessage(_ context.Context, msgType string, payload interface{}) error {
	q.mu.RLock()
	running := q.isRunning
	q.mu.RUnlock()
	if !running {
		return fmt.Errorf("queue not running")
	}

	msg := &Message{
		ID:        uuid.NewString(),
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	select {
	case q.ch <- msg:
		return nil
	default:
		return fmt.Errorf("queue full, dropping %s message", msgType)
	}
}

func (q *MemoryQueue) worker(id int) {
	defer q.wg.Done()

	for {
		select {
		case <-q.ctx.Done():
			return
		case msg := <-q.ch:
			q.handle(msg)
		}
	}
}

func (q *MemoryQueue) handle(msg *Message) {
	q.mu.RLock()
	job, ok := q.jobs[msg.Type]
	q.mu.RUnlock()
	if !ok {
		q.logger.Warn("no job registered for message type",
			logger.String("type", msg.Type))
		return
	}

	err := job.Handle(q.ctx, msg.Payload)
	if err == nil {
		return
	}

	msg.Attempts++
	if msg.Attempts > q.config.RetryLimit {
		q.logger.Error("job failed, retry limit reached",
			logger.String("job", job.Name()),
			logger.String("id", msg.ID),
			logger.Int("attempts", msg.Attempts),
			logger.Error(err),
		)
		return
	}

	q.logger.Warn("job failed, retrying",
		logger.String("job", job.Name()),
		logger.String("id", msg.ID),
		logger.Int("attempt", msg.Attempts),
		logger.Error(err),
	)

	// Delayed requeue off the worker goroutine.
	go func() {
		select {
		case <-q.ctx.Done():
		case <-time.After(q.config.RetryDelay):
			select {
			case q.ch <- msg:
			default:
				q.logger.Error("retry dropped, queue full",
					logger.String("id", msg.ID))
			}
		}
	}()
}
