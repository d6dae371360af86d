package modkit

import (
	"context"
	"sync"

	"janaza/internal/core/datefmt"
	"janaza/internal/platform/config"
	"janaza/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// Dates is the process default formatter; the locale middleware derives per request copies
	Dates *datefmt.Formatter
}

var (
	fallbackOnce sync.Once
	fallback     *datefmt.Formatter
)

// Formatter returns the request scoped formatter, then Dates, then an environment resolved default
func (d Deps) Formatter(ctx context.Context) *datefmt.Formatter {
	if f := datefmt.FromContext(ctx, d.Dates); f != nil {
		return f
	}
	fallbackOnce.Do(func() { fallback = datefmt.New() })
	return fallback
}

// Logger returns Log or the named process logger
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
