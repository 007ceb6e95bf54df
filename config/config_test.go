package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsCoverEverySection(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)

	assert.Equal(t, "payment_gateway", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())

	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "payment-orchestrator", cfg.JWT.Issuer)

	// Transactional-core sections and their documented defaults.
	assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
	assert.True(t, cfg.Fraud.Enabled)
	assert.InDelta(t, 0.70, cfg.Fraud.ScoreThreshold, 1e-9)
	assert.Equal(t, 3, cfg.Webhook.RetryAttempts)
	assert.Equal(t, time.Second, cfg.Webhook.RetryBaseDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Webhook.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.Webhook.RequestTimeout)
	assert.Equal(t, 50, cfg.Webhook.BatchSize)
	assert.Equal(t, "nats://localhost:4222", cfg.Bus.URL)
	assert.Equal(t, "stripe", cfg.Provider.Name)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
}

func TestYAMLFileOverridesDefaults(t *testing.T) {
	yaml := `
server:
  port: 9191
  mode: release
database:
  host: db.internal
  password: s3cret
  sslmode: require
redis:
  db: 3
fraud:
  enabled: false
  score_threshold: 0.85
webhook:
  retry_attempts: 5
  retry_base_delay_ms: 250ms
bus:
  url: nats://bus.internal:4222
provider:
  timeout_ms: 10s
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.False(t, cfg.Fraud.Enabled)
	assert.InDelta(t, 0.85, cfg.Fraud.ScoreThreshold, 1e-9)
	assert.Equal(t, 5, cfg.Webhook.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Webhook.RetryBaseDelay)
	assert.Equal(t, "nats://bus.internal:4222", cfg.Bus.URL)
	assert.Equal(t, 10*time.Second, cfg.Provider.Timeout)

	// Untouched keys keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 50, cfg.Webhook.BatchSize)
}

func TestEnvVarsWinOverDefaults(t *testing.T) {
	t.Setenv("SPG_SERVER_PORT", "3000")
	t.Setenv("SPG_DATABASE_HOST", "env-db")
	t.Setenv("SPG_JWT_SECRET", "from-env")
	t.Setenv("SPG_FRAUD_SCORE_THRESHOLD", "0.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "env-db", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.InDelta(t, 0.5, cfg.Fraud.ScoreThreshold, 1e-9)
}

func TestConnectionStringHelpers(t *testing.T) {
	db := DatabaseConfig{Host: "pg", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@pg:5432/d?sslmode=disable", db.DSN())

	assert.Equal(t, "cache:6380", RedisConfig{Host: "cache", Port: 6380}.Addr())
}
