package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/repository"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/middleware"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/usecase"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/config"
	xhttp "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/http"
	applogger "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/queue"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg       *config.Config
	logger    *applogger.Logger
	pipeline  *middleware.ScorePipeline
	queue     *queue.MemoryQueue
	refresher *usecase.Refresher
	history   domrepo.HistoryStore
	publisher domrepo.EventPublisher

	httpServer  *xhttp.Server
	httpHandler xhttp.Handler
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	pipeline *middleware.ScorePipeline,
	q *queue.MemoryQueue,
	refresher *usecase.Refresher,
	history domrepo.HistoryStore,
	publisher domrepo.EventPublisher,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:         cfg,
		logger:      logger,
		pipeline:    pipeline,
		queue:       q,
		refresher:   refresher,
		history:     history,
		publisher:   publisher,
		httpHandler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.pipeline.Start(ctx)
	a.logger.Info("score pipeline started")

	if a.queue != nil {
		if err := a.queue.Start(ctx); err != nil {
			return err
		}
	}
	if a.refresher != nil {
		a.refresher.Start(ctx)
	}

	a.httpServer = xhttp.NewServer(a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	if a.refresher != nil {
		a.refresher.Stop()
	}
	if a.queue != nil {
		a.queue.Stop()
	}

	// Stop the pipeline after the queue so in-flight refreshes still
	// deliver their results.
	a.pipeline.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.logger.Warn("history store close error", applogger.Error(err))
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("event publisher close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
