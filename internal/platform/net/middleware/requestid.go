package middleware

import (
	"net/http"
	"regexp"

	pnet "janaza/internal/platform/net"

	"github.com/google/uuid"
)

// HeaderRequestID is read from callers and echoed on every response
const HeaderRequestID = "X-Request-ID"

// upstream ids are reused only when they look like ids
var validID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

var newID = func() string { return uuid.NewString() } // seam

// RequestID propagates X-Request-ID or mints a uuid, stores it on context and echoes it
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if !validID.MatchString(id) {
			id = newID()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id)))
	})
}
