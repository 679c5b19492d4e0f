package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/staffhub/staffhub/internal/database/config"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), GormConfig())
	require.NoError(t, err)
	return db
}

func TestNewWithConfig_UnreachableHost(t *testing.T) {
	original := os.Getenv("DB_RETRY_MAX_ATTEMPTS")
	os.Setenv("DB_RETRY_MAX_ATTEMPTS", "1")
	defer func() {
		if original != "" {
			os.Setenv("DB_RETRY_MAX_ATTEMPTS", original)
		} else {
			os.Unsetenv("DB_RETRY_MAX_ATTEMPTS")
		}
	}()

	cfg := config.Config{
		Host:     "127.0.0.1",
		User:     "staffhub",
		Password: "topsecret",
		DBName:   "staffhub",
		Port:     "1",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	db, err := NewWithConfig(cfg, zap.NewNop().Sugar())

	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
	assert.NotContains(t, err.Error(), "topsecret")
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy connection", func(t *testing.T) {
		db := openSQLite(t)
		defer Close(db)

		assert.NoError(t, HealthCheck(ctx, db))
	})

	t.Run("nil connection", func(t *testing.T) {
		err := HealthCheck(ctx, nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database connection is nil")
	})

	t.Run("closed connection", func(t *testing.T) {
		db := openSQLite(t)
		require.NoError(t, Close(db))

		err := HealthCheck(ctx, db)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database ping failed")
	})
}

func TestClose(t *testing.T) {
	assert.NoError(t, Close(nil))
	assert.NoError(t, Close(openSQLite(t)))
}

func TestGetStats(t *testing.T) {
	t.Run("nil connection", func(t *testing.T) {
		stats, err := GetStats(nil)

		assert.Nil(t, stats)
		assert.Error(t, err)
	})

	t.Run("returns stats", func(t *testing.T) {
		db := openSQLite(t)
		defer Close(db)

		stats, err := GetStats(db)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.OpenConnections, 0)
	})
}

func TestIsDuplicateKey(t *testing.T) {
	t.Run("sentinel and driver errors", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			expected bool
		}{
			{name: "nil", err: nil, expected: false},
			{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, expected: true},
			{name: "wrapped gorm duplicated key", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), expected: true},
			{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, expected: true},
			{name: "postgres foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: false},
			{name: "duplicate key message", err: errors.New(`duplicate key value violates unique constraint "x"`), expected: true},
			{name: "unrelated", err: errors.New("connection refused"), expected: false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, IsDuplicateKey(tt.err))
			})
		}
	})

	t.Run("sqlite unique index", func(t *testing.T) {
		type item struct {
			ID   uint   `gorm:"primaryKey"`
			Code string `gorm:"uniqueIndex"`
		}
		db := openSQLite(t)
		defer Close(db)
		require.NoError(t, db.AutoMigrate(&item{}))
		require.NoError(t, db.Create(&item{Code: "a"}).Error)

		err := db.Create(&item{Code: "a"}).Error

		assert.True(t, IsDuplicateKey(err))
	})
}
