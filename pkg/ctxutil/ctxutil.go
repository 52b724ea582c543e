// Package ctxutil carries request-scoped identifiers through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
	sessionIDKey struct{}
)

// WithUserID returns a context carrying the authenticated learner.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the learner stored by WithUserID. A missing or nil
// id yields false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return nonNil(ctx, userIDKey{})
}

// WithSessionID returns a context carrying the practice session being driven.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromCtx reports the practice session stored by WithSessionID.
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return nonNil(ctx, sessionIDKey{})
}

func nonNil(ctx context.Context, key any) (uuid.UUID, bool) {
	id, ok := ctx.Value(key).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID returns a context carrying the request correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the correlation id, or "" when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
