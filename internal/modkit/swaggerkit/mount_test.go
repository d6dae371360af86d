package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "janaza/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMount(t *testing.T) {
	Describe(http.MethodPost, "/dates/format")

	off := phttp.AdaptChi(chi.NewRouter())
	Mount(off, false)
	rec := httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs = %d", rec.Code)
	}

	on := phttp.AdaptChi(chi.NewRouter())
	Mount(on, true)

	rec = httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("docs redirect = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Info    map[string]string         `json:"info"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc json: %v", err)
	}
	if doc.OpenAPI != "3.0.3" || doc.Info["title"] != "janaza-api" {
		t.Fatalf("doc header = %+v", doc)
	}
	if _, ok := doc.Paths["/dates/format"]["post"]; !ok {
		t.Fatalf("described path missing: %+v", doc.Paths)
	}
}
