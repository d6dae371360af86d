// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"janaza/internal/core/datefmt"
	"janaza/internal/core/version"
	modkit "janaza/internal/modkit"
	"janaza/internal/modkit/httpkit"
	str "janaza/internal/platform/strings"

	metahttp "janaza/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	deps  metahttp.Deps
}

// New constructs a meta module; readiness checks the formatter zone and the fallback zone
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	zones := []string{datefmt.FallbackZone}
	if deps.Dates != nil {
		zones = append([]string{deps.Dates.Zone()}, zones...)
	}
	return &Module{
		built: b,
		deps: metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   time.Now(),
			Zones:       zones,
		},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
