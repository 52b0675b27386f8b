package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	cachead "hotel_dashboard/internal/adapters/cache"
	server "hotel_dashboard/internal/adapters/http_server"
	"hotel_dashboard/internal/adapters/observability"
	"hotel_dashboard/internal/app"
	"hotel_dashboard/internal/domain"
	"hotel_dashboard/internal/shared"
	"hotel_dashboard/internal/storage/csvfile"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	var cache domain.Cache
	switch cfg.CacheBackend {
	case "redis":
		cache = cachead.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	default:
		cache = cachead.NewMemory()
	}

	src := csvfile.New(cfg.DatasetPath)
	q := app.NewDashboardService(src, cache, cfg.CacheTTL)

	// Eager load: a missing or malformed dataset file is a startup error,
	// not something to discover on the first request.
	rows, err := q.Dataset(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("dataset load failed")
	}
	log.Info().Int("rows", len(rows)).Str("path", cfg.DatasetPath).Msg("dataset loaded")

	// http
	srv := server.New(cfg.RateRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("dashboard listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
