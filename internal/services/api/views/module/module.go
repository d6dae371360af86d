// Package module wires views into the API using modkit
package module

import (
	"context"

	"janaza/internal/core/datefmt"
	modkit "janaza/internal/modkit"
	"janaza/internal/modkit/httpkit"
	str "janaza/internal/platform/strings"
	datesdom "janaza/internal/services/api/dates/domain"
	viewshttp "janaza/internal/services/api/views/http"
	viewssvc "janaza/internal/services/api/views/service"
)

// Ports are the ports views consumes, injected with modkit.WithPorts
type Ports struct {
	Dates datesdom.FormatterPort
}

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   viewssvc.Service
}

// New constructs a views module. Without an injected dates port it renders with deps directly
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("views"), modkit.WithPrefix("/views")}, opts...)...)

	var dates datesdom.FormatterPort = depsFormatter{deps: deps}
	if p, ok := b.Ports.(Ports); ok && p.Dates != nil {
		dates = p.Dates
	}
	return &Module{
		built: b,
		svc:   viewssvc.New(dates),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { viewshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns nothing; views is a leaf module
func (m *Module) Ports() any { return nil }

type depsFormatter struct{ deps modkit.Deps }

func (d depsFormatter) Formatter(ctx context.Context) *datefmt.Formatter { return d.deps.Formatter(ctx) }
