package auth

import "context"

type ctxKey struct{}

// WithUserID returns a context carrying the authenticated owner id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the owner id placed by the transport
// middleware, or "" for unauthenticated calls.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
