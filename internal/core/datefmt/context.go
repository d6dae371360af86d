package datefmt

import "context"

type ctxKey struct{}

// NewContext returns ctx carrying f
func NewContext(ctx context.Context, f *Formatter) context.Context {
	return context.WithValue(ctx, ctxKey{}, f)
}

// FromContext returns the Formatter on ctx or fallback
func FromContext(ctx context.Context, fallback *Formatter) *Formatter {
	if f, ok := ctx.Value(ctxKey{}).(*Formatter); ok && f != nil {
		return f
	}
	return fallback
}
