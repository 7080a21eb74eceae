package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/api/handler"
	"github.com/tablekit/restaurant-console/internal/core/domain"
)

// errorResponse is the canonical error envelope for all console errors.
// State is set for alerts raised on a screen that stays open.
type errorResponse struct {
	Error string `json:"error"`
	State any    `json:"state,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Passes backend errors through with the backend's status and message.
//   - Maps console errors to deterministic HTTP codes.
//   - Logs unexpected errors without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		resp := errorResponse{Error: msg}

		var alert *handler.Alert
		if errors.As(err, &alert) {
			resp.State = alert.State
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message
	}

	switch {
	case errors.Is(err, domain.ErrUnreachable):
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend unreachable")
		return http.StatusBadGateway, domain.ErrUnreachable.Error()
	case errors.Is(err, domain.ErrEmptySession):
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend answered without tokens")
		return http.StatusBadGateway, domain.ErrEmptySession.Error()
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired, "deletion must be confirmed with ?confirm=true"
	case errors.Is(err, domain.ErrNotMounted):
		return http.StatusConflict, "screen is not open"
	case errors.Is(err, domain.ErrNoFormOpen):
		return http.StatusConflict, "no form is open"
	case errors.Is(err, domain.ErrNoRecord):
		return http.StatusNotFound, "restaurant is not in the current list"
	case errors.Is(err, domain.ErrNoRefreshToken):
		return http.StatusUnauthorized, "no refresh token stored"
	case errors.Is(err, context.Canceled):
		return 499, "request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn().Err(err).Str("path", c.Path()).Msg("request timed out")
		return http.StatusGatewayTimeout, "request timed out"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
