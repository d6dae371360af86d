package httpkit

import (
	"net/http"

	"janaza/internal/core/datefmt"
	"janaza/internal/platform/logger"
	pstrings "janaza/internal/platform/strings"
)

// Headers and query keys the admin UI sends its viewer locale with
const (
	HeaderTimezone = "X-Timezone"
	QueryTimezone  = "tz"
	QueryLanguage  = "lang"
)

// Locale derives a per request Formatter from X-Timezone (or ?tz=) and Accept-Language (or ?lang=).
// Unknown zones keep the base zone; unmatched languages fall back to French
func Locale(base *datefmt.Formatter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f := datefmt.FromContext(r.Context(), base)
			if f == nil {
				f = datefmt.New()
			}

			var opts []datefmt.Option
			if zone := pstrings.FirstNonEmpty(r.URL.Query().Get(QueryTimezone), r.Header.Get(HeaderTimezone)); zone != "" {
				if _, ok := datefmt.LoadZone(zone); ok {
					opts = append(opts, datefmt.WithZone(zone))
				} else {
					logger.C(r.Context()).Debug().Str("zone", zone).Msg("ignoring unknown viewer zone")
				}
			}
			if lang := pstrings.FirstNonEmpty(r.URL.Query().Get(QueryLanguage), r.Header.Get("Accept-Language")); lang != "" {
				opts = append(opts, datefmt.WithLanguage(datefmt.MatchLanguage(lang)))
			}
			if len(opts) > 0 {
				f = f.With(opts...)
			}

			ctx := datefmt.NewContext(r.Context(), f)
			ctx = logger.WithLocale(ctx, f.Zone(), f.Language().String())
			w.Header().Set("Content-Language", f.Language().String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
