package app

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/users-service/internal/config"
)

// stubMigrate подменяет миграции на время теста
func stubMigrate(t *testing.T, err error) *int {
	t.Helper()
	calls := 0
	orig := migrate
	migrate = func(context.Context, *sql.DB) error {
		calls++
		return err
	}
	t.Cleanup(func() { migrate = orig })
	return &calls
}

func setupAppWithAddr(t *testing.T, addr string) *App {
	t.Helper()
	database, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	cfg := &config.Config{HTTP: config.HTTPConfig{Addr: addr, ShutdownTimeout: time.Second}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newWithDB(cfg, logger, database)
}

var userColumns = []string{"id", "username", "email", "active", "created_at"}

func setupApp(t *testing.T) (*App, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	cfg := &config.Config{HTTP: config.HTTPConfig{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newWithDB(cfg, logger, database), mock
}

func TestApp_SeedDB(t *testing.T) {
	t.Run("добавляет новых и пропускает существующих", func(t *testing.T) {
		a, mock := setupApp(t)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ").
			WithArgs("logan@gmail.com").
			WillReturnRows(sqlmock.NewRows(userColumns))
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("logan", "logan@gmail.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "active", "created_at"}).AddRow(1, true, time.Now()))
		mock.ExpectCommit()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ").
			WithArgs("taylor@gmail.com").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(2, "taylor", "taylor@gmail.com", true, time.Now()))

		err := a.SeedDB(context.Background())

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка БД прерывает заполнение", func(t *testing.T) {
		a, mock := setupApp(t)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ").
			WithArgs("logan@gmail.com").
			WillReturnError(errors.New("connection refused"))

		err := a.SeedDB(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to seed logan@gmail.com")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApp_Close(t *testing.T) {
	a, mock := setupApp(t)
	mock.ExpectClose()

	require.NoError(t, a.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_Run(t *testing.T) {
	t.Run("останавливается после отмены контекста", func(t *testing.T) {
		calls := stubMigrate(t, nil)
		a := setupAppWithAddr(t, "127.0.0.1:0")

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- a.Run(ctx) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("Run не завершился после отмены контекста")
		}
		assert.Equal(t, 1, *calls)
	})

	t.Run("ошибка миграций", func(t *testing.T) {
		stubMigrate(t, errors.New("failed to apply migrations"))
		a := setupAppWithAddr(t, "127.0.0.1:0")

		err := a.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to apply migrations")
	})

	t.Run("ошибка запуска сервера", func(t *testing.T) {
		stubMigrate(t, nil)
		a := setupAppWithAddr(t, "missing-port")

		err := a.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "server failed to start")
	})
}

func TestApp_Migrate(t *testing.T) {
	calls := stubMigrate(t, nil)
	a := setupAppWithAddr(t, "127.0.0.1:0")

	require.NoError(t, a.Migrate(context.Background()))
	assert.Equal(t, 1, *calls)
}
