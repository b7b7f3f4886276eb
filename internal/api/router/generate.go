package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mpavlovic/devfolio/internal/bloggen"
)

// GenerateRunner runs the blog-generation pipeline once.
type GenerateRunner interface {
	Run(ctx context.Context, trigger bloggen.Trigger) (*bloggen.Outcome, error)
}

type GenerateRouter struct {
	e      *echo.Echo
	runner GenerateRunner
}

func NewGenerateRouter(e *echo.Echo, runner GenerateRunner) *GenerateRouter {
	return &GenerateRouter{e: e, runner: runner}
}

func (r *GenerateRouter) Bind() {
	// Preflight is answered by the CORS middleware; the POST mirrors the
	// function-invocation contract the admin console calls.
	r.e.POST("/functions/generate-daily-blog", r.generateHandler)
}

func (r *GenerateRouter) generateHandler(c echo.Context) error {
	var trigger bloggen.Trigger
	// The body is optional; a missing or malformed body means a scheduled run.
	_ = c.Bind(&trigger)

	outcome, err := r.runner.Run(c.Request().Context(), trigger)
	if err != nil {
		slog.Error("Blog generation failed", "manual", trigger.Manual, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   err.Error(),
			"details": "Check function logs for more information",
		})
	}

	return c.JSON(http.StatusOK, outcome)
}
