package module

import (
	"context"

	"janaza/internal/core/datefmt"
	modkit "janaza/internal/modkit"
	datesdom "janaza/internal/services/api/dates/domain"
)

// Ports is the port set other modules may pull from dates
type Ports struct {
	Formatter datesdom.FormatterPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// formatterPort adapts deps to the domain FormatterPort interface
type formatterPort struct{ deps modkit.Deps }

// Formatter implements the domain FormatterPort interface
func (p formatterPort) Formatter(ctx context.Context) *datefmt.Formatter { return p.deps.Formatter(ctx) }
