package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "kennedia_site/internal/adapters/http_server"
	"kennedia_site/internal/adapters/memcache"
	"kennedia_site/internal/adapters/observability"
	redisad "kennedia_site/internal/adapters/redis"
	"kennedia_site/internal/adapters/scheduler"
	"kennedia_site/internal/app"
	"kennedia_site/internal/catalog"
	"kennedia_site/internal/domain"
	"kennedia_site/internal/shared"
	mysqlrepo "kennedia_site/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// catalog: seed first, so the site serves even before MySQL answers
	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load seed failed")
	}
	for _, w := range catalog.Validate(seed).Warnings {
		log.Warn().Str("context", "catalog").Msg(w)
	}
	store := catalog.New(seed)
	log.Info().Str("version", store.Version(ctx)).Int("hotels", len(seed.Hotels)).Msg("catalog loaded")

	var sched *scheduler.RefreshScheduler
	if cfg.CatalogSource == shared.SourceMySQL {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")

		sched, err = scheduler.New(app.NewRefresher(mysqlrepo.New(db), store), 30*time.Second)
		if err != nil {
			log.Fatal().Err(err).Msg("scheduler init failed")
		}
		if err := sched.Start(cfg.RefreshInterval); err != nil {
			log.Fatal().Err(err).Msg("scheduler start failed")
		}
	}

	// deps
	q := app.NewQueryService(store, newCache(ctx, cfg), cfg.CacheTTL)
	pages, err := server.NewPages(q, app.NewNewsletterService(),
		server.NewIPRateLimiter(rate.Limit(cfg.NewsletterRPS), cfg.NewsletterBurst))
	if err != nil {
		log.Fatal().Err(err).Msg("templates failed to parse")
	}

	// http
	srv := server.New(server.Options{TrustProxy: cfg.TrustProxy})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})
	srv.MountPages(pages)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("site listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if sched != nil {
		if err := sched.Shutdown(); err != nil {
			log.Error().Err(err).Msg("scheduler shutdown failed")
		}
	}
}

func loadSeed(path string) (domain.Catalog, error) {
	if path == "" {
		return catalog.LoadSeed()
	}
	return catalog.LoadFile(path)
}

// newCache prefers Redis when configured and reachable; otherwise views are
// cached in-process.
func newCache(ctx context.Context, cfg shared.Config) domain.Cache {
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := rc.Ping(pingCtx)
		if err == nil {
			log.Info().Str("addr", cfg.RedisAddr).Msg("using redis cache")
			return rc
		}
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, using in-process cache")
		_ = rc.Close()
	}
	return memcache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
}
