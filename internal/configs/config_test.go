package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_NAME", "PORT", "STATIC_PAGE_PATH", "CORS_ALLOWED_ORIGINS",
	"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE",
	"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_CONNECT_TIMEOUT",
	"DB_HEALTHCHECK_INTERVAL", "DB_HEALTHCHECK_FAILURES",
	"REDIS_URL", "FILTERS_CACHE_TTL", "METRICS_ENABLED",
	"STDOUT_LOG_LEVEL", "STDOUT_LOG_JSON",
	"FLUENTBIT_ENABLED", "FLUENTBIT_HOST", "FLUENTBIT_PORT", "FLUENTBIT_LOG_LEVEL",
}

// clearEnv blanks every key; empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "car-catalog-service", cfg.AppName)
	assert.Equal(t, "3000", cfg.Rest.Port)
	assert.Equal(t, "car-analyzer-table.html", cfg.Rest.StaticPagePath)
	assert.Equal(t, []string{"*"}, cfg.Rest.AllowedOrigins)
	assert.Equal(t, "postgres://postgres@localhost:5432/sahibinden_cars?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.Database.MaxConnIdleTime)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.Database.HealthcheckInterval)
	assert.Equal(t, 3, cfg.Database.HealthcheckFailures)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 5*time.Minute, cfg.Redis.FiltersCacheTTL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "debug", cfg.StdoutLogger.Level)
	assert.False(t, cfg.StdoutLogger.IsJSON)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfig_DiscreteDatabaseVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "cars")
	t.Setenv("DB_USER", "reader")
	t.Setenv("DB_PASSWORD", "p@ss word")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "postgres://reader:p%40ss%20word@db:6543/cars?sslmode=require", cfg.Database.URL)
}

func TestLoadConfig_DatabaseURLWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@remote:5432/x")
	t.Setenv("DB_HOST", "ignored")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@remote:5432/x", cfg.Database.URL)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearEnv(t)
	for _, key := range configKeys {
		// godotenv never overrides variables that exist, even empty ones
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"PORT=8080\nREDIS_URL=redis://localhost:6379/0\nFILTERS_CACHE_TTL=90s\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n",
	), 0o600))
	t.Cleanup(func() {
		for _, key := range []string{"PORT", "REDIS_URL", "FILTERS_CACHE_TTL", "CORS_ALLOWED_ORIGINS"} {
			os.Unsetenv(key)
		}
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Rest.Port)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 90*time.Second, cfg.Redis.FiltersCacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Rest.AllowedOrigins)
}

func TestLoadConfig_FluentBitNeedsHost(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLUENTBIT_ENABLED", "true")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)

	t.Setenv("FLUENTBIT_HOST", "fluent-bit")
	cfg, err = LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.True(t, cfg.FluentBit.Enabled)
	assert.Equal(t, 24224, cfg.FluentBit.Port)
	assert.Equal(t, "info", cfg.FluentBit.Level)
}

func TestLoadConfig_RejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("DB_CONNECT_TIMEOUT", "5")
	t.Setenv("METRICS_ENABLED", "yes please")

	_, err := LoadConfig(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
	assert.Contains(t, err.Error(), "DB_CONNECT_TIMEOUT")
	assert.Contains(t, err.Error(), "METRICS_ENABLED")
}

func TestLoadConfig_RejectsOutOfRangeValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_CONNS", "0")
	t.Setenv("DB_HEALTHCHECK_FAILURES", "-1")

	_, err := LoadConfig(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
	assert.Contains(t, err.Error(), "DB_HEALTHCHECK_FAILURES")
}
