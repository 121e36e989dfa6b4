package api

import (
	"github.com/labstack/echo/v4"
)

// Routes bundles every HTTP handler behind one registration point.
type Routes struct {
	scores *ScoresEchoHandler
	live   *LiveHandler
}

func NewRoutes(scores *ScoresEchoHandler, live *LiveHandler) *Routes {
	return &Routes{scores: scores, live: live}
}

func (r *Routes) RegisterRoutes(e *echo.Echo) {
	r.scores.RegisterRoutes(e)
	r.live.RegisterRoutes(e)
}
