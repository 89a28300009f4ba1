package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Swagger        bool     `mapstructure:"swagger"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	DSN             string `mapstructure:"dsn"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the explicit DSN when one is configured, otherwise builds
// one for the configured driver. Postgres URLs (DATABASE_URL style) are
// accepted as-is.
func (d *DatabaseConfig) GetDSN() string {
	if d.DSN != "" {
		return d.DSN
	}

	switch strings.ToLower(d.Driver) {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	case DriverSQLite:
		if d.Database == "" {
			return "file::memory:?_foreign_keys=on"
		}
		return fmt.Sprintf("file:%s?_foreign_keys=on", d.Database)
	default:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.Username, d.Password),
			Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
			Path:     "/" + d.Database,
			RawQuery: "sslmode=" + sslMode,
		}
		return u.String()
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// IdentityConfig points at the Keycloak realm that issues bearer tokens.
type IdentityConfig struct {
	URL                    string        `mapstructure:"url"`
	Realm                  string        `mapstructure:"realm"`
	ScannerClientID        string        `mapstructure:"scanner_client_id"`
	AdminRole              string        `mapstructure:"admin_role"`
	JWKSCacheTTL           time.Duration `mapstructure:"jwks_cache_ttl"`
	JWKSMinRefreshInterval time.Duration `mapstructure:"jwks_min_refresh_interval"`
	HTTPTimeout            time.Duration `mapstructure:"http_timeout"`
}

func (i *IdentityConfig) RealmURL() string {
	return fmt.Sprintf("%s/realms/%s", strings.TrimRight(i.URL, "/"), i.Realm)
}

func (i *IdentityConfig) JWKSURL() string {
	return i.RealmURL() + "/protocol/openid-connect/certs"
}

func (i *IdentityConfig) TokenURL() string {
	return i.RealmURL() + "/protocol/openid-connect/token"
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	HealthPerMinute int  `mapstructure:"health_per_minute"`
	RootPerMinute   int  `mapstructure:"root_per_minute"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ScannerConfig holds the client-credentials settings used by the scan
// command to act as the NFC reader.
type ScannerConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TokenURL     string `mapstructure:"token_url"`
	APIURL       string `mapstructure:"api_url"`
}
