// @title         Janaza API
// @version       0.1.0
// @description   Timezone aware date formatting for the Janaza Jamaa admin

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"janaza/internal/core/datefmt"
	"janaza/internal/modkit/httpkit"
	"janaza/internal/platform/config"
	"janaza/internal/platform/logger"
	phttp "janaza/internal/platform/net/http"

	"janaza/internal/services/api"

	"golang.org/x/text/language"
)

func main() {
	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	datesCfg := root.Prefix("DATES_")

	// process default formatter; requests derive their own from X-Timezone and Accept-Language
	opts := []datefmt.Option{
		datefmt.WithLanguage(datesCfg.MayLanguage("LANG", language.French)),
		datefmt.WithDiagnostics(datefmt.NewDiagnostics(logger.Named("datefmt"))),
	}
	if zone := datesCfg.MayZone("TIMEZONE"); zone != "" {
		opts = append(opts, datefmt.WithZone(zone))
	}
	dates := datefmt.New(opts...)
	l.Info().Str("zone", dates.Zone()).Str("lang", dates.Language().String()).Msg("dates configured")

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Dates:          dates,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack: httpkit.StackOptions{
				CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
				Timeout:     apiCfg.MayDuration("TIMEOUT", 0),
				SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 0),
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
