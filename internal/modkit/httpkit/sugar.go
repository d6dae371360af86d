package httpkit

import (
	"net/http"

	phttp "janaza/internal/platform/net/http"
	"janaza/internal/platform/net/http/bind"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON binds and validates T before calling h
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	phttp.PostJSON(r, path, h, opts...)
}
