package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/billed/expense-api/internal/core/domain"
)

// Session validates the bearer token and attaches the connected user's
// identity (email, type) to the request context. The core only ever reads
// this identity; issuing tokens is outside this service.
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			email, _ := claims["email"].(string)
			userType, _ := claims["type"].(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
			}

			sess := domain.Session{Email: email, Type: userType}
			c.Set("email", sess.Email)
			c.Set("type", sess.Type)
			c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), sess)))

			return next(c)
		}
	}
}
