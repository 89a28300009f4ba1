package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/smartlock-inc/smartlock/internal/shared/config"
)

const envPrefix = "SMARTLOCK"

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Identity  sharedConfig.IdentityConfig  `mapstructure:"identity"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Metrics   sharedConfig.MetricsConfig   `mapstructure:"metrics"`
	Scanner   sharedConfig.ScannerConfig   `mapstructure:"scanner"`
}

// Load builds the configuration from, in increasing precedence: defaults,
// the YAML file, a .env file in the working directory and SMARTLOCK_*
// environment variables. configPath may name a file; when empty the usual
// configs directories are searched and a missing file is not an error.
func Load(env, configPath string) (*Config, error) {
	// .env only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// DATABASE_URL is the conventional name for a postgres connection string
	if err := v.BindEnv("database.dsn", envPrefix+"_DATABASE_DSN", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database dsn: %w", err)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !stderrors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Database.Driver) {
	case sharedConfig.DriverPostgres, sharedConfig.DriverMySQL, sharedConfig.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Identity.URL == "" || c.Identity.Realm == "" {
		return fmt.Errorf("identity.url and identity.realm are required")
	}

	if c.RateLimit.Enabled && (c.RateLimit.HealthPerMinute < 1 || c.RateLimit.RootPerMinute < 1) {
		return fmt.Errorf("ratelimit limits must be positive when rate limiting is enabled")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.swagger", true)

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "smartlock")
	v.SetDefault("database.password", "smartlock")
	v.SetDefault("database.database", "smartlock")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Identity provider defaults
	v.SetDefault("identity.url", "http://localhost:8080")
	v.SetDefault("identity.realm", "smartlock")
	v.SetDefault("identity.scanner_client_id", "nfc-scanner")
	v.SetDefault("identity.admin_role", "admin")
	v.SetDefault("identity.jwks_cache_ttl", 5*time.Minute)
	v.SetDefault("identity.jwks_min_refresh_interval", time.Minute)
	v.SetDefault("identity.http_timeout", 5*time.Second)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Rate limit defaults
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.health_per_minute", 60)
	v.SetDefault("ratelimit.root_per_minute", 100)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Scanner simulator defaults
	v.SetDefault("scanner.client_id", "nfc-scanner")
	v.SetDefault("scanner.client_secret", "")
	v.SetDefault("scanner.token_url", "")
	v.SetDefault("scanner.api_url", "http://localhost:8000")
}
