package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/billed/expense-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bills", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"unsupported file type", domain.ErrUnsupportedFileType, http.StatusBadRequest, domain.MsgUnsupportedFileType},
		{"bill not found", domain.ErrBillNotFound, http.StatusNotFound, "Erreur 404"},
		{"receipt not found", domain.ErrReceiptNotFound, http.StatusNotFound, "Erreur 404"},
		{"wrapped not found", errors.Join(errors.New("update"), domain.ErrBillNotFound), http.StatusNotFound, "Erreur 404"},
		{"session missing", domain.ErrSessionMissing, http.StatusUnauthorized, "missing session identity"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"upload in flight", domain.ErrUploadInFlight, http.StatusConflict, domain.ErrUploadInFlight.Error()},
		{"submission in flight", domain.ErrSubmissionInFlight, http.StatusConflict, domain.ErrSubmissionInFlight.Error()},
		{"duplicate submission", domain.ErrDuplicateSubmission, http.StatusConflict, domain.ErrDuplicateSubmission.Error()},
		{"receipt missing", domain.ErrReceiptMissing, http.StatusConflict, domain.ErrReceiptMissing.Error()},
		{"unexpected error", errors.New("mongo exploded"), http.StatusInternalServerError, "Erreur 500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_InternalDetailsNotLeaked(t *testing.T) {
	_, msg := renderError(t, errors.New("connection refused 10.0.0.3:27017"))
	if msg != "Erreur 500" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
