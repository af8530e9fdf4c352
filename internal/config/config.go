// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Receipt store drivers.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the API server will bind to.
	ServerHost string
	// ServerPort is the port number the API server will listen on.
	ServerPort int

	// DBDriver selects the receipt store ("file", "sqlite", "postgres" or "mysql").
	DBDriver string
	// DBConnectionString is the connection string for the SQL drivers.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// ReceiptsFilePath is the JSON file used by the "file" driver.
	ReceiptsFilePath string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// PhoneDefaultRegion is the region used to parse telephone numbers without a country code.
	PhoneDefaultRegion string
	// EmailAllowedDomains are accepted even when an address fails structural validation.
	EmailAllowedDomains []string

	// RateLimitEnabled indicates whether per-IP rate limiting of the API is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for per-IP rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		DBDriver:             env.GetString("DB_DRIVER", DriverFile),
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", "file:receipts.db"),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		ReceiptsFilePath: env.GetString("RECEIPTS_FILE_PATH", "receipts.json"),

		LogLevel: env.GetString("LOG_LEVEL", "info"),

		PhoneDefaultRegion: strings.ToUpper(env.GetString("PHONE_DEFAULT_REGION", "NZ")),
		EmailAllowedDomains: splitList(
			env.GetString("EMAIL_ALLOWED_DOMAINS", "example.com,example.org,example.net"),
		),

		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "returns"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// UsesSQL reports whether the configured receipt store is backed by database/sql.
func (c *Config) UsesSQL() bool {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
		return true
	default:
		return false
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// splitList parses a comma-separated list, dropping blanks and lowercasing entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadDotEnv searches for a .env file from the current directory up to the root
// and loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
