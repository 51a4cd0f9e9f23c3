package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api/metrics"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes,
//     keeping the three 401 kinds textually distinct from each other and
//     from RBAC's 403.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Authentication chain failures → deterministic codes and one metric
	// per failure kind.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		metrics.AuthFailuresTotal.WithLabelValues("unauthenticated").Inc()
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, domain.ErrInvalidToken):
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrPrincipalNotFound):
		metrics.AuthFailuresTotal.WithLabelValues("principal_not_found").Inc()
		return http.StatusUnauthorized, "user not found"
	case errors.Is(err, domain.ErrForbidden):
		metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrVendorNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrGuestNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrOrderNotCancellable):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
