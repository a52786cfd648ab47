package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host" env:"FITNESS_HOST, overwrite"`
	Port        int    `toml:"port" env:"FITNESS_PORT, overwrite"`

	// logging
	LogLevel      string `toml:"log_level" env:"FITNESS_LOG_LEVEL, overwrite"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host" env:"FITNESS_POSTGRES_HOST, overwrite"`
	PostgresPort   string `toml:"postgres_port" env:"FITNESS_POSTGRES_PORT, overwrite"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host" env:"FITNESS_REDIS_HOST, overwrite"`
	RedisPort string `toml:"redis_port" env:"FITNESS_REDIS_PORT, overwrite"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// request layer
	AllowedOrigins     []string `toml:"allowed_origins"`
	RateLimitPerMinute int      `toml:"rate_limit_per_minute"`
	ConflictMaxRetries int      `toml:"conflict_max_retries"`
	CatalogCacheSizeMB int      `toml:"catalog_cache_size_mb"`

	// secrets, never read from the config file
	PostgresPassword string `toml:"-" env:"FITNESS_POSTGRES_PASSWORD"`
	RedisPassword    string `toml:"-" env:"FITNESS_REDIS_PASS"`
	GatewaySecret    string `toml:"-" env:"FITNESS_GATEWAY_SECRET"`
	SentryDSN        string `toml:"-" env:"SENTRY_DSN"`
	HoneycombEnabled bool   `toml:"-" env:"HONEYCOMB_ENABLED"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the env section of the TOML file at path and applies the
// environment variable overrides on top of it.
func Load(env, path string) (*Config, error) {
	return load(context.Background(), env, path, envconfig.OsLookuper())
}

func load(ctx context.Context, env, path string, lookuper envconfig.Lookuper) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 120
	}
	if c.ConflictMaxRetries == 0 {
		c.ConflictMaxRetries = 3
	}
	if c.CatalogCacheSizeMB == 0 {
		c.CatalogCacheSizeMB = 16
	}
}

func (c *Config) Validate() (err error) {
	if c.Port <= 0 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		err = multierr.Append(err, errors.New("postgres host, port and db name must be set"))
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		err = multierr.Append(err, errors.New("redis host and port must be set"))
	}
	if c.RateLimitPerMinute < 0 {
		err = multierr.Append(err, fmt.Errorf("invalid rate limit per minute: %d", c.RateLimitPerMinute))
	}
	if c.ConflictMaxRetries < 0 {
		err = multierr.Append(err, fmt.Errorf("invalid conflict max retries: %d", c.ConflictMaxRetries))
	}
	return err
}
