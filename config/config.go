package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	AES         AESConfig         `mapstructure:"aes"`
	Log         LogConfig         `mapstructure:"log"`
	Idempotency IdempotencyConfig `mapstructure:"idempotency"`
	Fraud       FraudConfig       `mapstructure:"fraud"`
	Webhook     WebhookConfig     `mapstructure:"webhook"`
	Bus         BusConfig         `mapstructure:"bus"`
	Provider    ProviderConfig    `mapstructure:"provider"`
}

// IdempotencyConfig tunes the Idempotency Gate's fast-cache layer.
type IdempotencyConfig struct {
	TTL time.Duration `mapstructure:"ttl_seconds"`
}

// FraudConfig tunes the Fraud Scorer.
type FraudConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	ScoreThreshold float64 `mapstructure:"score_threshold"`
}

// WebhookConfig tunes the Webhook Dispatcher's retry engine.
type WebhookConfig struct {
	RetryAttempts    int           `mapstructure:"retry_attempts"`
	RetryBaseDelay   time.Duration `mapstructure:"retry_base_delay_ms"`
	PollInterval     time.Duration `mapstructure:"poll_interval_ms"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout_ms"`
	BatchSize        int           `mapstructure:"batch_size"`
}

// BusConfig points at the Event Bus adapter's backing NATS deployment.
// Topic and consumer-group names are compile-time constants shared by
// producers and consumers, not configuration.
type BusConfig struct {
	URL string `mapstructure:"url"`
}

// ProviderConfig selects and bounds the pluggable ProviderAdapter.
type ProviderConfig struct {
	Name       string        `mapstructure:"name"`
	Timeout    time.Duration `mapstructure:"timeout_ms"`
	StripeKey  string        `mapstructure:"stripe_key"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SPG_ (Secure Payment Gateway).
// Nested keys use underscore: SPG_DATABASE_HOST, SPG_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payment_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "payment-orchestrator")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("idempotency.ttl_seconds", "24h")
	v.SetDefault("fraud.enabled", true)
	v.SetDefault("fraud.score_threshold", 0.70)
	v.SetDefault("webhook.retry_attempts", 3)
	v.SetDefault("webhook.retry_base_delay_ms", "1s")
	v.SetDefault("webhook.poll_interval_ms", "500ms")
	v.SetDefault("webhook.request_timeout_ms", "5s")
	v.SetDefault("webhook.batch_size", 50)
	v.SetDefault("bus.url", "nats://localhost:4222")
	v.SetDefault("provider.name", "stripe")
	v.SetDefault("provider.timeout_ms", "30s")
	v.SetDefault("provider.stripe_key", "")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SPG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; env vars and defaults can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
