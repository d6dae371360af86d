// Package module wires dates into the API using modkit
package module

import (
	modkit "janaza/internal/modkit"
	"janaza/internal/modkit/httpkit"
	str "janaza/internal/platform/strings"
	dateshttp "janaza/internal/services/api/dates/http"
	datessvc "janaza/internal/services/api/dates/service"
)

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   datessvc.Service
	ports Ports
}

// New constructs a dates module resolving formatters from deps
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("dates"), modkit.WithPrefix("/dates")}, opts...)...)

	return &Module{
		built: b,
		svc:   datessvc.New(deps.Formatter),
		ports: Ports{Formatter: formatterPort{deps: deps}},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { dateshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }
