package ctxutil

import (
	"context"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// WithCaller stores the request's caller classification in the context.
func WithCaller(ctx context.Context, c domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFromCtx returns the caller stored by WithCaller.
// A context without one yields an anonymous caller.
func CallerFromCtx(ctx context.Context) domain.Caller {
	c, _ := ctx.Value(callerKey).(domain.Caller)
	return c
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
