// Package ctxutil provides helpers for storing and retrieving request-scoped
// values in context.
package ctxutil

import "context"

// key is an unexported type to avoid collisions.
type key int

const (
	requestIDKey key = iota
	clientIDKey
	identityKey
)

// WithRequestID returns a new context with the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID extracts the request ID from the context, if set.
func RequestID(ctx context.Context) string {
	if s, ok := ctx.Value(requestIDKey).(string); ok {
		return s
	}
	return ""
}

// WithClientID returns a new context with the given client ID.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey, id)
}

// ClientID extracts the client ID from the context, if set.
func ClientID(ctx context.Context) string {
	if s, ok := ctx.Value(clientIDKey).(string); ok {
		return s
	}
	return ""
}

// WithIdentity returns a new context carrying the authenticated user ID.
func WithIdentity(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, identityKey, userID)
}

// Identity extracts the authenticated user ID from the context. The empty
// string means the request is anonymous.
func Identity(ctx context.Context) string {
	if s, ok := ctx.Value(identityKey).(string); ok {
		return s
	}
	return ""
}
