// Package app holds the explicit application context: configuration, logger,
// database pool, services and HTTP server, built once at startup.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bagdasarian/users-service/internal/config"
	"github.com/bagdasarian/users-service/internal/db"
	"github.com/bagdasarian/users-service/internal/domain"
	"github.com/bagdasarian/users-service/internal/handler"
	"github.com/bagdasarian/users-service/internal/handler/server"
	"github.com/bagdasarian/users-service/internal/repository/postgres"
	"github.com/bagdasarian/users-service/internal/service"
)

type App struct {
	cfg         *config.Config
	logger      *slog.Logger
	db          *sql.DB
	userService service.UserService
	server      *server.Server
}

type seedUser struct {
	username string
	email    string
}

var migrate = db.Migrate

var seedUsers = []seedUser{
	{username: "logan", email: "logan@gmail.com"},
	{username: "taylor", email: "taylor@gmail.com"},
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	database, err := db.NewPostgres(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("successfully connected to database", "env", cfg.AppSettings)

	return newWithDB(cfg, logger, database), nil
}

func newWithDB(cfg *config.Config, logger *slog.Logger, database *sql.DB) *App {
	userRepo := postgres.NewUserRepository(database)
	userService := service.NewUserService(userRepo)

	h := handler.NewHandler(userService, logger)

	return &App{
		cfg:         cfg,
		logger:      logger,
		db:          database,
		userService: userService,
		server:      server.NewServer(h, cfg.HTTP, logger),
	}
}

// Run применяет миграции и обслуживает HTTP до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	if err := migrate(ctx, a.db); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func (a *App) Migrate(ctx context.Context) error {
	if err := migrate(ctx, a.db); err != nil {
		return err
	}
	a.logger.Info("migrations applied")
	return nil
}

func (a *App) RecreateDB(ctx context.Context) error {
	if err := db.Recreate(ctx, a.db); err != nil {
		return err
	}
	a.logger.Info("database recreated")
	return nil
}

// SeedDB добавляет тестовых пользователей; уже существующие пропускаются.
func (a *App) SeedDB(ctx context.Context) error {
	for _, u := range seedUsers {
		user, err := a.userService.CreateUser(ctx, u.username, u.email)
		if errors.Is(err, domain.ErrDuplicateEmail) {
			a.logger.Warn("seed user already exists", "email", u.email)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", u.email, err)
		}
		a.logger.Info("seed user added", "id", user.ID, "email", user.Email)
	}
	return nil
}

func (a *App) Close() error {
	return a.db.Close()
}
