package db

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/users-service/internal/db/migrations"
)

type gooseFunc = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error

// stubGoose подменяет вызовы goose и возвращает порядок вызовов
func stubGoose(t *testing.T, upErr, resetErr error) *[]string {
	t.Helper()

	origUp, origReset := gooseUpContext, gooseResetContext
	t.Cleanup(func() {
		gooseUpContext, gooseResetContext = origUp, origReset
	})

	var calls []string
	record := func(name string, err error) gooseFunc {
		return func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
			calls = append(calls, name+":"+dir)
			return err
		}
	}
	gooseUpContext = record("up", upErr)
	gooseResetContext = record("reset", resetErr)

	return &calls
}

func newMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")

	require.NoError(t, err)
	assert.Contains(t, files, "00001_create_users.sql")
}

func TestMigrate(t *testing.T) {
	t.Run("успешное применение миграций", func(t *testing.T) {
		calls := stubGoose(t, nil, nil)

		err := Migrate(context.Background(), newMockDB(t))

		require.NoError(t, err)
		assert.Equal(t, []string{"up:."}, *calls)
	})

	t.Run("ошибка goose оборачивается", func(t *testing.T) {
		stubGoose(t, errors.New("boom"), nil)

		err := Migrate(context.Background(), newMockDB(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to apply migrations")
	})
}

func TestRecreate(t *testing.T) {
	t.Run("reset, затем up", func(t *testing.T) {
		calls := stubGoose(t, nil, nil)

		err := Recreate(context.Background(), newMockDB(t))

		require.NoError(t, err)
		assert.Equal(t, []string{"reset:.", "up:."}, *calls)
	})

	t.Run("ошибка reset прерывает пересоздание", func(t *testing.T) {
		calls := stubGoose(t, nil, errors.New("boom"))

		err := Recreate(context.Background(), newMockDB(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reset migrations")
		assert.Equal(t, []string{"reset:."}, *calls)
	})
}
