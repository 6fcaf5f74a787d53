// Package utils provides small helpers shared by the server, the client
// adapter and the handlers: typed context keys, JSON response writing,
// bearer token issuing and parsing, password hashing, the resty HTTP
// client wrapper and trace identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// A dedicated type keeps keys from colliding with plain string keys
// set by other packages.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated user identifier
// is stored in the request context by the auth middleware.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// TraceIDCtxKey is the key under which the request trace identifier
// is stored in the request context.
var TraceIDCtxKey = contextKey("traceID")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// ok is false when the value is missing or is not an int64.
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTraceIDFromContext returns the trace identifier stored in ctx,
// or an empty string when none was set.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
