package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpavlovic/devfolio/internal/api/router"
	"github.com/mpavlovic/devfolio/internal/apperr"
	"github.com/mpavlovic/devfolio/internal/bloggen"
)

type stubRunner struct {
	outcome  *bloggen.Outcome
	err      error
	triggers []bloggen.Trigger
}

func (s *stubRunner) Run(ctx context.Context, trigger bloggen.Trigger) (*bloggen.Outcome, error) {
	s.triggers = append(s.triggers, trigger)
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

func newGenerateServer(runner *stubRunner) *echo.Echo {
	e := echo.New()
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	router.NewGenerateRouter(e, runner).Bind()
	return e
}

func TestGenerateHandler_Success(t *testing.T) {
	runner := &stubRunner{outcome: &bloggen.Outcome{
		Message: "Blog post generated successfully",
		Blog:    &bloggen.BlogSummary{Title: "T", Slug: "t", Skill: "Go"},
	}}
	e := newGenerateServer(runner)

	req := httptest.NewRequest(http.MethodPost, "/functions/generate-daily-blog", strings.NewReader(`{"manual":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Blog post generated successfully", body["message"])

	blog, ok := body["blog"].(map[string]any)
	require.True(t, ok, "expected blog object in response")
	assert.Equal(t, "t", blog["slug"])
	assert.Equal(t, "Go", blog["skill"])

	require.Len(t, runner.triggers, 1)
	assert.True(t, runner.triggers[0].Manual, "manual flag must pass through")
}

func TestGenerateHandler_NoTopicsIsStillOK(t *testing.T) {
	runner := &stubRunner{outcome: &bloggen.Outcome{Message: "No skills found to generate blog about"}}
	e := newGenerateServer(runner)

	req := httptest.NewRequest(http.MethodPost, "/functions/generate-daily-blog", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No skills found to generate blog about", body["message"])
	assert.NotContains(t, body, "blog")
}

func TestGenerateHandler_FailureShape(t *testing.T) {
	runner := &stubRunner{err: apperr.NewUpstream("OpenAI API", 429, errors.New("rate limit exceeded"))}
	e := newGenerateServer(runner)

	req := httptest.NewRequest(http.MethodPost, "/functions/generate-daily-blog", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "429")
	assert.Equal(t, "Check function logs for more information", body["details"])
}

func TestGenerateHandler_MissingBodyDefaultsToScheduled(t *testing.T) {
	runner := &stubRunner{outcome: &bloggen.Outcome{Message: "ok"}}
	e := newGenerateServer(runner)

	req := httptest.NewRequest(http.MethodPost, "/functions/generate-daily-blog", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, runner.triggers, 1)
	assert.False(t, runner.triggers[0].Manual)
}

func TestGenerateHandler_PreflightAllowed(t *testing.T) {
	e := newGenerateServer(&stubRunner{})

	req := httptest.NewRequest(http.MethodOptions, "/functions/generate-daily-blog", nil)
	req.Header.Set(echo.HeaderOrigin, "https://admin.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
