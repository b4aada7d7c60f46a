package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "adverts.db", cfg.Database.Path)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADVERTS_PRIMARY__ENV", "production")
	t.Setenv("ADVERTS_SERVER__PORT", "9090")
	t.Setenv("ADVERTS_DATABASE__DRIVER", "postgres")
	t.Setenv("ADVERTS_DATABASE__HOST", "db.internal")
	t.Setenv("ADVERTS_DATABASE__PORT", "6543")
	t.Setenv("ADVERTS_DATABASE__USER", "adverts")
	t.Setenv("ADVERTS_DATABASE__NAME", "adverts")
	t.Setenv("ADVERTS_DATABASE__MAX_OPEN_CONNS", "25")
	t.Setenv("ADVERTS_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("ADVERTS_DATABASE__DRIVER", "oracle")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigPostgresNeedsHost(t *testing.T) {
	t.Setenv("ADVERTS_DATABASE__DRIVER", "postgres")
	t.Setenv("ADVERTS_DATABASE__USER", "adverts")
	t.Setenv("ADVERTS_DATABASE__NAME", "adverts")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsBadLogLevel(t *testing.T) {
	t.Setenv("ADVERTS_OBSERVABILITY__LOGGING__LEVEL", "loud")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}
