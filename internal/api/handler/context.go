package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billed/expense-api/internal/core/domain"
)

// ctxSession extracts the identity injected by the Session middleware and
// performs a fast-fail check before any service call: a non-empty email
// proves the middleware ran, so a miss here means the route is miswired.
func ctxSession(c echo.Context) (domain.Session, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	userType, _ := c.Get("type").(string)
	return domain.Session{Email: email, Type: userType}, nil
}
