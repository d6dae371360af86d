// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"janaza/internal/core/datefmt"
	"janaza/internal/core/version"
	"janaza/internal/modkit/httpkit"
	"janaza/internal/modkit/swaggerkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Zones must all load for the service to be ready, the configured zone first
	Zones []string
	Now   func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)

	for _, p := range []string{"/health", "/ready", "/version", "/service"} {
		swaggerkit.Describe(http.MethodGet, "/meta"+p)
	}
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"janaza-api"`
	Started string `json:"started"  example:"2025-10-05T13:00:00Z"`
	Now     string `json:"now"      example:"2025-10-05T13:05:00Z"`
}

// ReadyCheck describes a single zone check
type ReadyCheck struct {
	Name   string `json:"name"   example:"Europe/Paris"`
	Status string `json:"status" example:"ok"` // ok fail
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-10-05T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"janaza-api"`
	Started string `json:"started" example:"2025-10-05T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe: every configured zone must load from tzdata
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "tzdata missing"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	out := ReadyResponse{Status: "ok", Now: h.deps.Now().UTC().Format(time.RFC3339)}
	seen := map[string]bool{}
	for _, z := range h.deps.Zones {
		if z == "" || seen[z] {
			continue
		}
		seen[z] = true
		c := ReadyCheck{Name: z, Status: "ok"}
		if _, ok := datefmt.LoadZone(z); !ok {
			c.Status = "fail"
			out.Status = "fail"
		}
		out.Checks = append(out.Checks, c)
	}
	if out.Status != "ok" {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
