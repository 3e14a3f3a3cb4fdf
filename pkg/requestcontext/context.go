// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets the values; services and clients read them without pulling
// in net/http:
//
//	callID := requestcontext.CallID(ctx)
//	veileder := requestcontext.NAVIdent(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject values directly:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

type (
	callIDKey      struct{}
	navIdentKey    struct{}
	tokenKey       struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyCallID      = callIDKey{}
	ContextKeyNAVIdent    = navIdentKey{}
	ContextKeyToken       = tokenKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// CallID returns the correlation id of the current request or background run.
func CallID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyCallID).(string); ok {
		return id
	}
	return ""
}

// WithCallID injects a correlation id.
func WithCallID(ctx context.Context, callID string) context.Context {
	return context.WithValue(ctx, ContextKeyCallID, callID)
}

// NAVIdent returns the authenticated caseworker ident, or "" when unauthenticated.
func NAVIdent(ctx context.Context) string {
	if ident, ok := ctx.Value(ContextKeyNAVIdent).(string); ok {
		return ident
	}
	return ""
}

// WithNAVIdent injects the authenticated caseworker ident.
func WithNAVIdent(ctx context.Context, ident string) context.Context {
	return context.WithValue(ctx, ContextKeyNAVIdent, ident)
}

// BearerToken returns the raw bearer token of the caller.
func BearerToken(ctx context.Context) string {
	if token, ok := ctx.Value(ContextKeyToken).(string); ok {
		return token
	}
	return ""
}

// WithBearerToken injects the caller's raw bearer token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ContextKeyToken, token)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (cronjobs, consumers, CLI).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
