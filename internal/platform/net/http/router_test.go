package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "janaza/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, http.NoBody))
	return rec
}

func TestAdaptChi_GroupRouteAndFallbacks(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	r.NotFound(phttp.NotFound)
	r.MethodNotAllowed(phttp.MethodNotAllowed)

	var hits []string
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			hits = append(hits, "root")
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api/v1", func(v1 phttp.Router) {
		v1.Group(func(g phttp.Router) {
			g.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					hits = append(hits, "group")
					next.ServeHTTP(w, req)
				})
			})
			g.Get("/ping", func(w http.ResponseWriter, req *http.Request) { phttp.RespondOK(w, req, "pong") })
		})
		v1.Post("/echo", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})
	r.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }))

	mux := r.Mux()

	rec := serve(mux, http.MethodGet, "/api/v1/ping")
	if rec.Code != http.StatusOK || decode(t, rec).Data != "pong" {
		t.Fatalf("ping = %d %s", rec.Code, rec.Body.String())
	}
	if len(hits) != 2 || hits[0] != "root" || hits[1] != "group" {
		t.Fatalf("middleware order = %v", hits)
	}

	if rec := serve(mux, http.MethodPost, "/api/v1/echo"); rec.Code != http.StatusNoContent {
		t.Fatalf("echo = %d", rec.Code)
	}
	if rec := serve(mux, http.MethodGet, "/raw"); rec.Code != http.StatusTeapot {
		t.Fatalf("raw = %d", rec.Code)
	}

	rec = serve(mux, http.MethodGet, "/nope")
	env := decode(t, rec)
	if rec.Code != http.StatusNotFound || env.StatusCode != http.StatusNotFound || env.Error == "" {
		t.Fatalf("not found = %d %+v", rec.Code, env)
	}

	rec = serve(mux, http.MethodDelete, "/api/v1/echo")
	if rec.Code != http.StatusMethodNotAllowed || decode(t, rec).Error != "méthode non autorisée: DELETE" {
		t.Fatalf("method = %d %s", rec.Code, rec.Body.String())
	}
}
