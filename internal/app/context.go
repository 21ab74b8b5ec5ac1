package app

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying a
func NewContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext returns the App stored by NewContext, or nil
func FromContext(ctx context.Context) *App {
	if ctx == nil {
		return nil
	}
	a, _ := ctx.Value(ctxKey{}).(*App)
	return a
}
