// Package matchpulse assembles the backend: storage, migrations, the two
// provider clients, the account and aggregation services, and the HTTP
// server.
package matchpulse

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/matchpulse/matchpulse-backend/internal/clients/apisports"
	"github.com/matchpulse/matchpulse-backend/internal/clients/footballdata"
	"github.com/matchpulse/matchpulse-backend/internal/config"
	"github.com/matchpulse/matchpulse-backend/internal/lib/jwt"
	libsmtp "github.com/matchpulse/matchpulse-backend/internal/lib/smtp"
	"github.com/matchpulse/matchpulse-backend/internal/migrations"
	authservice "github.com/matchpulse/matchpulse-backend/internal/services/auth"
	footballservice "github.com/matchpulse/matchpulse-backend/internal/services/football"
	"github.com/matchpulse/matchpulse-backend/internal/services/mailer"
	"github.com/matchpulse/matchpulse-backend/internal/storage/repository"
)

// App holds the running server and its dependencies.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New builds the application from the configuration. The database must be
// reachable; migrations run before the server accepts traffic.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	transport := libsmtp.NewTransport(cfg, logger)
	mailService := mailer.New(logger, transport, cfg.ResetURL)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, mailService, jwtMaker, cfg.ResetTokenTTL)

	footballData := footballdata.NewClient(cfg.FootballDataBaseURL, cfg.FootballDataAPIKey, cfg.FootballDataTimeout)
	apiSports := apisports.NewClient(cfg.APISportsBaseURL, cfg.APISportsAPIKey, cfg.APISportsTimeout)
	footballService := footballservice.New(footballData, apiSports)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authService, footballService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
