package middleware

import (
	"context"

	"github.com/billed/expense-api/internal/core/domain"
)

type sessionKey struct{}

// WithSession returns a context carrying the connected user's identity.
func WithSession(ctx context.Context, sess domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionReader implements ports.SessionReader against the request context
// populated by the Session middleware.
type SessionReader struct{}

// FromContext returns the session carried by ctx.
func (SessionReader) FromContext(ctx context.Context) (domain.Session, error) {
	sess, ok := ctx.Value(sessionKey{}).(domain.Session)
	if !ok || sess.Email == "" {
		return domain.Session{}, domain.ErrSessionMissing
	}
	return sess, nil
}
