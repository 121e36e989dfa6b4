package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	icache "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/service/cache"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/service/metrics"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/service/ratelimit"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/services/present"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/usecase"
	xhttp "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/http"
	xlogger "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
)

const dashboardCacheTTL = 30 * time.Second

// ScoresEchoHandler serves the scoring endpoints over Echo.
type ScoresEchoHandler struct {
	logger    *xlogger.Logger
	scorecard *usecase.ScoreCardUsecase
	compare   *usecase.CompareUsecase
	mapper    *present.Mapper
	cache     icache.BytesCache
	rl        *ratelimit.Limiter
}

func NewScoresEchoHandler(
	logger *xlogger.Logger,
	scorecard *usecase.ScoreCardUsecase,
	compare *usecase.CompareUsecase,
	mapper *present.Mapper,
) *ScoresEchoHandler {
	metrics.Register()
	return &ScoresEchoHandler{
		logger:    logger,
		scorecard: scorecard,
		compare:   compare,
		mapper:    mapper,
		rl:        ratelimit.New(),
	}
}

// SetCache injects a response cache for the dashboard endpoint.
func (h *ScoresEchoHandler) SetCache(c icache.BytesCache) { h.cache = c }

func (h *ScoresEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/score", h.Score)
	g.GET("/dashboard", h.Dashboard)
	g.GET("/compare", h.Compare)
	e.GET("/healthz", h.Health)
}

func (h *ScoresEchoHandler) Score(c echo.Context) error {
	start := time.Now()
	endpoint := "score"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.ScoreRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":score", 10, 5) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limited")
	}

	card, err := h.scorecard.Score(c.Request().Context(), req.Ticker)
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("score usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	return xhttp.SuccessResponse(c, card)
}

func (h *ScoresEchoHandler) Dashboard(c echo.Context) error {
	start := time.Now()
	endpoint := "dashboard"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.DashboardRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":dashboard", 10, 5) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limited")
	}

	cacheKey := "dashboard:" + models.NormalizeTicker(req.Ticker) + ":" + strconv.Itoa(req.Days)
	if h.cache != nil {
		if b, ok, cerr := h.cache.GetBytes(cacheKey); cerr == nil && ok {
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	card, err := h.scorecard.Score(c.Request().Context(), req.Ticker)
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("dashboard usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}

	bundle := h.mapper.Dashboard(c.Request().Context(), *card, req.Days, time.Now().UTC())
	if h.cache != nil {
		if b, merr := json.Marshal(xhttp.APIResponse{
			Status:  http.StatusOK,
			Message: http.StatusText(http.StatusOK),
			Data:    bundle,
		}); merr == nil {
			_ = h.cache.SetBytes(cacheKey, b, dashboardCacheTTL)
		}
	}
	return xhttp.SuccessResponse(c, bundle)
}

func (h *ScoresEchoHandler) Compare(c echo.Context) error {
	start := time.Now()
	endpoint := "compare"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.CompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":compare", 5, 2) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limited")
	}

	set, err := h.compare.Compare(c.Request().Context(), strings.Split(req.Tickers, ","))
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("compare usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	return xhttp.SuccessResponse(c, set)
}

func (h *ScoresEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

// mapDomainError translates domain sentinels to AppErrors with the right
// HTTP status.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidTicker):
		return xhttp.NewAppError("ERR_INVALID_TICKER", "ticker", err.Error(), http.StatusBadRequest).WithError(err)
	case errors.Is(err, models.ErrDataUnavailable):
		return xhttp.NewAppError("ERR_DATA_UNAVAILABLE", "", err.Error(), http.StatusServiceUnavailable).WithError(err)
	case errors.Is(err, models.ErrModelInputMismatch):
		return xhttp.NewAppError("ERR_MODEL_INPUT", "", "model input mismatch", http.StatusInternalServerError).WithError(err)
	default:
		return err
	}
}
