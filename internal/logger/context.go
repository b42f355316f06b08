package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// NewSession tags the context with a fresh session id. One id covers one
// operator session from login to exit.
func NewSession(ctx context.Context) context.Context {
	return WithSessionID(ctx, uuid.NewString())
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func SessionIDFrom(ctx context.Context) string {
	if v := ctx.Value(sessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with session_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	sessID := SessionIDFrom(ctx)
	if sessID == "" {
		return L()
	}
	return L().With(zap.String("session_id", sessID))
}
