// @title Recipe Book Backend API
// @version 1.0
// @description User registration, login and recipe records backed by a document store and a media host
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"

	_ "RECIPEBOOK_BACK-END/docs" // This is required for swagger
	"RECIPEBOOK_BACK-END/internal/config"
	"RECIPEBOOK_BACK-END/internal/handlers"
	"RECIPEBOOK_BACK-END/internal/logger"
	"RECIPEBOOK_BACK-END/internal/media"
	"RECIPEBOOK_BACK-END/internal/routes"
	"RECIPEBOOK_BACK-END/internal/store"
	"RECIPEBOOK_BACK-END/internal/utils"
	"RECIPEBOOK_BACK-END/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("server", "info").Fatal().Err(err).Msg("load config")
	}
	log := logger.NewLogger("server", cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docs, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("open document store")
	}
	defer closeStore()

	uploader, err := media.New(ctx, cfg.Media)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Media.Driver).Msg("init media host")
	}

	hasher, err := utils.NewPasswordHasher(cfg.Security.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("init password hasher")
	}

	// --- HTTP Handlers ---
	authHandler := handlers.NewAuthHandler(store.NewUserRepository(docs), hasher)
	recipeHandler := handlers.NewRecipeHandler(store.NewRecipeRepository(docs), uploader, cfg.Server.MaxUploadBytes)
	healthHandler := handlers.NewHealthHandler(docs)

	router := routes.SetupRoutes(log, authHandler, recipeHandler, healthHandler, routes.Options{
		Swagger: cfg.Server.EnableSwagger,
		Metrics: true,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}

// openStore returns the configured document store and its cleanup func.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (store.DocumentStore, func(), error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		log.Warn().Msg("using in-memory document store; data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	}

	pool, err := store.NewPool(ctx, cfg.Store, cfg.GetDSN())
	if err != nil {
		return nil, nil, err
	}

	if cfg.Store.Migrate {
		db := stdlib.OpenDBFromPool(pool)
		err := migrations.Migrate(db, log)
		db.Close()
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	return store.NewPostgresStore(pool), pool.Close, nil
}
