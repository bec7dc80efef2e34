//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bagdasarian/users-service/internal/db"
	"github.com/bagdasarian/users-service/internal/handler"
	"github.com/bagdasarian/users-service/internal/handler/server"
	repo "github.com/bagdasarian/users-service/internal/repository/postgres"
	"github.com/bagdasarian/users-service/internal/service"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.Run(ctx,
		"postgres:17.7",
		postgres.WithDatabase("users_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	// Накатываем миграции goose
	require.NoError(t, db.Migrate(ctx, database), "не удалось применить миграции")

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

// setupTestServer поднимает HTTP-сервер поверх реальной БД
func setupTestServer(t *testing.T) (*httptest.Server, *sql.DB) {
	database := setupTestDB(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userService := service.NewUserService(repo.NewUserRepository(database))
	h := handler.NewHandler(userService, logger)

	srv := httptest.NewServer(server.NewHandler(h, logger))
	t.Cleanup(srv.Close)

	return srv, database
}
