package auth

import "context"

type ctxKey struct{}

// WithUsername stores the authenticated username in ctx.
// Called by the auth middleware after token verification.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, ctxKey{}, username)
}

// UsernameFromCtx returns the authenticated username, or "" when the
// request did not pass through the auth middleware.
func UsernameFromCtx(ctx context.Context) string {
	if u, ok := ctx.Value(ctxKey{}).(string); ok {
		return u
	}
	return ""
}
