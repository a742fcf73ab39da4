package model

import "context"

// Scope identifies who is acting on a request.
type Scope struct {
	UserID string
}

type scopeKey struct{}

// SetScopeToContext stores sc on ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the Scope stored on ctx, if any.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	return sc, ok
}
