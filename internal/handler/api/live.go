package api

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/usecase"
	xhttp "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/http"
	xlogger "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
)

const (
	liveFrameSeconds    = 2
	liveFrameSecondsMax = 10
	liveStepSigma       = 1.2
	liveEventChance     = 0.10
	liveWriteTimeout    = 5 * time.Second
)

// demoEvents are the simulated headlines injected into the live stream.
var demoEvents = []string{
	"Earnings report released",
	"Credit rating agency review",
	"Sector outlook revised",
	"Debt refinancing announced",
	"Analyst coverage update",
}

// LiveHandler streams a simulated real-time score over WebSocket. Every
// frame is marked synthetic; this endpoint is a demo visualization, not a
// monitoring feed.
type LiveHandler struct {
	logger    *xlogger.Logger
	scorecard *usecase.ScoreCardUsecase
	upgrader  websocket.Upgrader
}

func NewLiveHandler(logger *xlogger.Logger, scorecard *usecase.ScoreCardUsecase) *LiveHandler {
	return &LiveHandler{
		logger:    logger,
		scorecard: scorecard,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *LiveHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/live", h.Stream)
}

// Stream upgrades the connection and emits one synthetic frame per tick
// until the client disconnects.
func (h *LiveHandler) Stream(c echo.Context) error {
	req := &models.LiveRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	// Anchor the walk at the real current score.
	card, err := h.scorecard.Score(c.Request().Context(), req.Ticker)
	if err != nil {
		h.logger.Error("live anchor score error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	h.logger.Info("live stream opened", xlogger.String("ticker", card.Result.Ticker))

	// Reader goroutine detects client close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	interval := xhttp.ParseIntDefault(c.QueryParam("interval"), liveFrameSeconds)
	if interval < 1 || interval > liveFrameSecondsMax {
		interval = liveFrameSeconds
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	score := card.Result.Score
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			h.logger.Info("live stream closed", xlogger.String("ticker", card.Result.Ticker))
			return nil
		case <-c.Request().Context().Done():
			return nil
		case <-ticker.C:
			score = clampLive(score + rng.NormFloat64()*liveStepSigma)
			frame := models.LiveFrame{
				Ticker:    card.Result.Ticker,
				Score:     score,
				Risk:      models.RiskFromScore(score),
				Synthetic: true,
				Timestamp: time.Now().UTC(),
			}
			if rng.Float64() < liveEventChance {
				frame.Event = demoEvents[rng.Intn(len(demoEvents))]
			}

			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
			if err := conn.WriteJSON(frame); err != nil {
				h.logger.Warn("live stream write failed",
					xlogger.String("ticker", card.Result.Ticker), xlogger.Error(err))
				return nil
			}
		}
	}
}

func clampLive(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
