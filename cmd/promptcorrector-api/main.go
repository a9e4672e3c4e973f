// @title         promptcorrector API
// @version       1.0.0
// @description   Review queue for code-switched English/Yoruba prompts

package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"promptcorrector/internal/platform/config"
	"promptcorrector/internal/platform/logger"
	"promptcorrector/internal/platform/metrics"
	phttp "promptcorrector/internal/platform/net/http"
	"promptcorrector/internal/platform/store"

	"promptcorrector/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "promptcorrector-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	m, err := metrics.New(nil)
	if err != nil {
		l.Panic().Err(err).Msg("metrics.New failed")
	}

	// http server (reads CORE_API_API_PORT and CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	if err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		Metrics:        m,
		Migrate:        apiCfg.MayBool("MIGRATE", false),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		CORSOrigins:    strings.Fields(strings.ReplaceAll(apiCfg.MayString("CORS_ORIGINS", ""), ",", " ")),
	}); err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}

	// Run returns once SIGINT/SIGTERM cancels ctx and in-flight requests drain
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
