package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "janaza/internal/platform/errors"
	"janaza/internal/platform/logger"
	phttp "janaza/internal/platform/net/http"
)

// RecoverJSON converts panics into the 500 envelope and logs the stack with the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			phttp.RespondError(w, r, perr.PanicErrf("erreur interne"))
		}()
		next.ServeHTTP(w, r)
	})
}
