// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/daybook-app/daybook/internal/adapter/postgres"
	emotionrepo "github.com/daybook-app/daybook/internal/adapter/postgres/emotion"
	entryrepo "github.com/daybook-app/daybook/internal/adapter/postgres/entry"
	personrepo "github.com/daybook-app/daybook/internal/adapter/postgres/person"
	placerepo "github.com/daybook-app/daybook/internal/adapter/postgres/place"
	sessionrepo "github.com/daybook-app/daybook/internal/adapter/postgres/session"
	settingsrepo "github.com/daybook-app/daybook/internal/adapter/postgres/settings"
	userrepo "github.com/daybook-app/daybook/internal/adapter/postgres/user"
	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/service/auth"
	"github.com/daybook-app/daybook/internal/service/backup"
	"github.com/daybook-app/daybook/internal/service/catalog"
	"github.com/daybook-app/daybook/internal/service/journal"
	"github.com/daybook-app/daybook/internal/service/seed"
	usersvc "github.com/daybook-app/daybook/internal/service/user"
	"github.com/daybook-app/daybook/internal/transport/middleware"
	"github.com/daybook-app/daybook/internal/transport/rest"
	"github.com/daybook-app/daybook/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, seeds the default tag vocabulary, wires
// all services and handlers, and serves HTTP until the context is cancelled
// or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	txManager := postgres.NewTxManager(pool)

	emotions := emotionrepo.NewRepo(pool)
	people := personrepo.NewRepo(pool)
	places := placerepo.NewRepo(pool)
	entries := entryrepo.NewRepo(pool)
	users := userrepo.NewRepo(pool)
	sessions := sessionrepo.NewRepo(pool)
	settings := settingsrepo.NewRepo(pool)

	if err := seed.NewSeeder(emotions, places, logger).Run(ctx); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	catalogSvc := catalog.NewService(emotions, people, places, entries, txManager)
	journalSvc := journal.NewService(entries, emotions, places, txManager)
	authSvc := auth.NewService(users, sessions, cfg.Auth)
	backupSvc := backup.NewService(entries, emotions, people, places, logger)
	userSvc := usersvc.NewService(settings)

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Auth:     rest.NewAuthHandler(authSvc, cfg.Auth, logger),
		Catalog:  rest.NewCatalogHandler(catalogSvc, logger),
		Entry:    rest.NewEntryHandler(journalSvc, logger),
		Backup:   rest.NewBackupHandler(backupSvc, logger),
		Settings: rest.NewSettingsHandler(userSvc, logger),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authSvc, cfg.Auth.CookieName),
	)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
