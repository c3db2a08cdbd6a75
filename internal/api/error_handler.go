package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/billed/expense-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// The front-end renders its error page from these store-level messages; the
// wording mirrors the historical client contract.
const (
	msgNotFound = "Erreur 404"
	msgInternal = "Erreur 500"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
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

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		// The message doubles as the user-facing alert text.
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrBillNotFound),
		errors.Is(err, domain.ErrReceiptNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, domain.ErrSessionMissing):
		return http.StatusUnauthorized, "missing session identity"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUploadInFlight),
		errors.Is(err, domain.ErrSubmissionInFlight),
		errors.Is(err, domain.ErrDuplicateSubmission),
		errors.Is(err, domain.ErrReceiptMissing):
		return http.StatusConflict, err.Error()
	}

	// Unexpected error: log the real cause, return the generic store message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, msgInternal
}
