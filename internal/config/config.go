package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port           string
	Env            string
	MigrationsPath string

	DB        DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Report    ReportConfig
	CORS      CORSConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host is configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// RateLimitConfig bounds report requests per client IP.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
}

// ReportConfig contains report computation settings.
type ReportConfig struct {
	Timeout   time.Duration
	Currency  string
	ExportDir string

	// ExportInterval schedules all-region snapshots into ExportDir; 0 disables them.
	ExportInterval time.Duration
}

// CORSConfig lists the hosts allowed to read reports from a browser.
type CORSConfig struct {
	AllowedHosts []string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.MigrationsPath = getEnv("MIGRATIONS_PATH", "file://migrations")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	cfg.CORS = CORSConfig{
		AllowedHosts: splitList(getEnv("CORS_ALLOWED_HOSTS", "localhost:3000,127.0.0.1:3000")),
	}

	cfg.Report = ReportConfig{
		Currency:  getEnv("REPORT_CURRENCY", "USD"),
		ExportDir: getEnv("REPORT_EXPORT_DIR", "reports"),
	}

	var err error
	if cfg.Report.Timeout, err = parseDurationEnv("REPORT_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEOUT: %w", err)
	}
	if cfg.Report.ExportInterval, err = parseDurationEnv("REPORT_EXPORT_INTERVAL", "0s"); err != nil {
		return nil, fmt.Errorf("invalid REPORT_EXPORT_INTERVAL: %w", err)
	}

	cfg.RateLimit.RequestsPerWindow = getEnvInt("RATE_LIMIT_REQUESTS", 60)
	if cfg.RateLimit.Window, err = parseDurationEnv("RATE_LIMIT_WINDOW", "1m"); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	if cfg.RateLimit.RequestsPerWindow <= 0 {
		return nil, errors.New("RATE_LIMIT_REQUESTS must be a positive integer")
	}

	// Basic validation for DB parameters.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
