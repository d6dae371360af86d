package httpkit

import (
	"net/http"

	pstrings "janaza/internal/platform/strings"
)

// MountUnder routes prefix to a subrouter carrying mw, then lets mount register on it.
// The prefix is normalized to a single leading slash; the root is rejected
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(pstrings.MustPrefix(prefix), func(sub Router) {
		sub.Use(mw...)
		mount(sub)
	})
}
