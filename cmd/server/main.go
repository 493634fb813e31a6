// Command server runs the Hafak Surgicals web portal: public catalog API,
// admin management surface, and the process-wide session against the catalog
// backend.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hafaksurgicals/portal/internal/api"
	"github.com/hafaksurgicals/portal/internal/api/handler"
	"github.com/hafaksurgicals/portal/internal/core/ports"
	"github.com/hafaksurgicals/portal/internal/core/service"
	"github.com/hafaksurgicals/portal/internal/infrastructure/backend"
	"github.com/hafaksurgicals/portal/internal/infrastructure/config"
	"github.com/hafaksurgicals/portal/internal/infrastructure/store"
	"github.com/hafaksurgicals/portal/internal/quote"
	"github.com/hafaksurgicals/portal/internal/session"
	"github.com/hafaksurgicals/portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Token store: Redis when configured, local file otherwise ---
	var tokenStore ports.TokenStore
	readyChecks := map[string]handler.CheckFunc{}

	if cfg.Store.RedisAddr != "" {
		rdb, err := store.Connect(ctx, store.RedisConfig{
			Addr: cfg.Store.RedisAddr,
			DB:   cfg.Store.RedisDB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()

		redisStore := store.NewRedisTokenStore(rdb)
		tokenStore = redisStore
		readyChecks["token_store"] = redisStore.Ping
		log.Info().Str("addr", cfg.Store.RedisAddr).Msg("token store: redis")
	} else {
		fileStore := store.NewFileTokenStore(cfg.Store.TokenFile)
		tokenStore = fileStore
		readyChecks["token_store"] = fileStore.Ping
		log.Info().Str("path", cfg.Store.TokenFile).Msg("token store: file")
	}

	// --- Upstream client and facades ---
	client := backend.NewClient(cfg.Upstream.BaseURL, tokenStore, nil, log)

	authAPI := service.NewAuthService(client, tokenStore)
	equipmentAPI := service.NewEquipmentService(client, tokenStore)
	categoryAPI := service.NewCategoryService(client, tokenStore)
	uploadAPI := service.NewUploadService(client)

	readyChecks["upstream"] = func(ctx context.Context) error {
		_, err := equipmentAPI.Categories(ctx)
		return err
	}

	// --- Session manager: single owning instance for the whole process ---
	sessionManager := session.NewManager(authAPI, tokenStore, log, session.Options{
		ValidateTimeout: cfg.Session.ValidateTimeout,
		RevalidateEvery: cfg.Session.RevalidateEvery,
	})
	sessionManager.Start(ctx)
	defer sessionManager.Stop()

	if cfg.Session.CookieSecret == "" {
		log.Warn().Msg("SESSION_COOKIE_SECRET is empty; browser cookies are signed with an empty key")
	}

	e := api.NewRouter(api.Dependencies{
		Config:      cfg,
		Session:     sessionManager,
		Auth:        authAPI,
		Equipment:   equipmentAPI,
		Categories:  categoryAPI,
		Uploads:     uploadAPI,
		Quotes:      quote.NewBuilder(cfg.Site.WhatsAppNumber, cfg.Site.CompanyWebsite),
		ReadyChecks: readyChecks,
		Log:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("portal started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
