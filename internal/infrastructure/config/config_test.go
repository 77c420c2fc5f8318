package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"TAX_APP_NAME":          os.Getenv("TAX_APP_NAME"),
		"TAX_APP_ENV":           os.Getenv("TAX_APP_ENV"),
		"TAX_APP_PORT":          os.Getenv("TAX_APP_PORT"),
		"TAX_DATABASE_DRIVER":   os.Getenv("TAX_DATABASE_DRIVER"),
		"TAX_DATABASE_HOST":     os.Getenv("TAX_DATABASE_HOST"),
		"TAX_DATABASE_PORT":     os.Getenv("TAX_DATABASE_PORT"),
		"TAX_DATABASE_USER":     os.Getenv("TAX_DATABASE_USER"),
		"TAX_DATABASE_PASSWORD": os.Getenv("TAX_DATABASE_PASSWORD"),
		"TAX_DATABASE_DBNAME":   os.Getenv("TAX_DATABASE_DBNAME"),
		"TAX_DATABASE_SSLMODE":  os.Getenv("TAX_DATABASE_SSLMODE"),
		"TAX_REDIS_ENABLED":     os.Getenv("TAX_REDIS_ENABLED"),
		"TAX_SEED_CLIENTS":      os.Getenv("TAX_SEED_CLIENTS"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "taxpractice-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "taxpractice", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 25, cfg.Seed.Clients)
		assert.Equal(t, 70, cfg.Seed.ExtractedPercent)
		assert.False(t, cfg.Redis.Enabled)
	})

	t.Run("loads values from environment variables with TAX prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("TAX_APP_NAME", "test-app")
		os.Setenv("TAX_APP_PORT", "9000")
		os.Setenv("TAX_DATABASE_DRIVER", "sqlite")
		os.Setenv("TAX_DATABASE_HOST", "testdb.local")
		os.Setenv("TAX_SEED_CLIENTS", "5")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5, cfg.Seed.Clients)
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		clearEnv()
		os.Setenv("TAX_DATABASE_DRIVER", "oracle")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("production requires password and ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("TAX_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "tax",
		Password: "p@ss/word",
		DBName:   "taxpractice",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// special characters must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
