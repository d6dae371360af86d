// Package api provides the HTTP API for the application
package api

import (
	"context"

	"janaza/internal/core/datefmt"
	"janaza/internal/platform/config"
	"janaza/internal/platform/logger"
	phttp "janaza/internal/platform/net/http"
	"janaza/internal/platform/net/middleware"

	"janaza/internal/modkit"
	"janaza/internal/modkit/httpkit"
	"janaza/internal/modkit/module"
	"janaza/internal/modkit/swaggerkit"

	datesdom "janaza/internal/services/api/dates/domain"
	datesmod "janaza/internal/services/api/dates/module"
	metamod "janaza/internal/services/api/meta/module"
	viewsmod "janaza/internal/services/api/views/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Dates          *datefmt.Formatter
	EnableSwagger  bool
	EnableProfiler bool
	Stack          httpkit.StackOptions
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		Dates: opt.Dates,
	}

	// load balancer probe, outside the versioned stack
	r.Use(middleware.Heartbeat("/healthz"))
	r.NotFound(phttp.NotFound)
	r.MethodNotAllowed(phttp.MethodNotAllowed)

	// dates owns the formatter port that views renders with
	dates := datesmod.New(deps)
	views := viewsmod.New(deps, modkit.WithPorts(viewsmod.Ports{
		Dates: module.MustPortsOf[datesdom.FormatterPort](dates),
	}))

	mods := []module.Module{
		metamod.New(deps),
		dates,
		views,
	}

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack, opt.Dates), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	deps.Logger("api").Info().
		Str("zone", deps.Formatter(context.Background()).Zone()).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Strs("modules", module.Names()).
		Msg("api mounted")
}
