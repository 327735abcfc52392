package auth

import "context"

type ctxKey struct{}

// WithClaims stores verified token claims in ctx.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// FromCtx returns the claims injected by the auth middleware, if any.
func FromCtx(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*Claims)
	return claims, ok
}
