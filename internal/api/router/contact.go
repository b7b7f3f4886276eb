package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mpavlovic/devfolio/internal/apperr"
	"github.com/mpavlovic/devfolio/internal/domain"
	"github.com/mpavlovic/devfolio/internal/storage"
)

type ContactRouter struct {
	e        *echo.Echo
	messages storage.MessageStore
}

func NewContactRouter(e *echo.Echo, messages storage.MessageStore) *ContactRouter {
	return &ContactRouter{e: e, messages: messages}
}

func (r *ContactRouter) Bind() {
	r.e.POST("/contact", r.submitHandler)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *ContactRouter) submitHandler(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid contact payload", err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return apperr.NewValidation("name is required")
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return apperr.NewValidation("a valid email is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return apperr.NewValidation("message is required")
	}

	msg, err := r.messages.Create(c.Request().Context(), domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, msg)
}
