package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"janaza/internal/core/version"
)

var (
	pathsMu sync.Mutex
	paths   = map[string][]string{}
)

// Describe lists a route in the served document; modules call it next to their route registration
func Describe(method, path string) {
	pathsMu.Lock()
	defer pathsMu.Unlock()
	paths[path] = append(paths[path], strings.ToLower(method))
}

// docReader builds a skeleton OpenAPI document from the described routes
var docReader = func() string {
	pathsMu.Lock()
	defer pathsMu.Unlock()

	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ps := make(map[string]map[string]any, len(keys))
	for _, k := range keys {
		ops := map[string]any{}
		for _, m := range paths[k] {
			ops[m] = map[string]any{"responses": map[string]any{"200": map[string]any{"description": "envelope"}}}
		}
		ps[k] = ops
	}

	bi := version.Info()
	doc := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": bi.Service, "version": bi.Version},
		"servers": []map[string]string{{"url": "/api/v1"}},
		"paths":   ps,
	}
	b, _ := json.Marshal(doc)
	return string(b)
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}
