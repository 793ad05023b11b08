package middleware

import "context"

type callerIDKey struct{}

// WithCallerID attaches a verified service id to the context
func WithCallerID(ctx context.Context, serviceID string) context.Context {
	return context.WithValue(ctx, callerIDKey{}, serviceID)
}

// CallerIDFromContext returns the service id put there by Authenticate
func CallerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callerIDKey{}).(string)
	return id, ok && id != ""
}
