package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"janaza/internal/core/datefmt"
	"janaza/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	// SlowRequest marks access log lines as warn; 0 means one second
	SlowRequest time.Duration
}

// CommonStack returns the per API middleware slice: correlation, safety, logging, CORS, locale
func CommonStack(opt StackOptions, dates *datefmt.Formatter) []func(http.Handler) http.Handler {
	slow := opt.SlowRequest
	if slow <= 0 {
		slow = time.Second
	}
	timeout := opt.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		// locale before the access log so its lines carry tz and lang
		Locale(dates),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: slow}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: opt.CORSOrigins}),
		middleware.Timeout(timeout),
		middleware.Compress(flate.BestSpeed),
	}
}
