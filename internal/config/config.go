package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Auth    AuthConfig
	Latency LatencyConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// LatencyConfig tunes the simulated network delay per operation class.
// Auth and ticket operations draw from the wide window, customer and
// comment operations from the narrow one.
type LatencyConfig struct {
	Enabled        bool
	WideMinMillis  int
	WideMaxMillis  int
	QuickMinMillis int
	QuickMaxMillis int
	RandSeed       int64
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "support-desk-sim"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 6),
		},
		Latency: LatencyConfig{
			Enabled:        getEnvAsBool("SIM_LATENCY_ENABLED", true),
			WideMinMillis:  getEnvAsInt("SIM_LATENCY_WIDE_MIN_MS", 250),
			WideMaxMillis:  getEnvAsInt("SIM_LATENCY_WIDE_MAX_MS", 2000),
			QuickMinMillis: getEnvAsInt("SIM_LATENCY_QUICK_MIN_MS", 250),
			QuickMaxMillis: getEnvAsInt("SIM_LATENCY_QUICK_MAX_MS", 1000),
			RandSeed:       int64(getEnvAsInt("SIM_LATENCY_RAND_SEED", 0)),
		},
	}

	if cfg.Latency.WideMaxMillis < cfg.Latency.WideMinMillis ||
		cfg.Latency.QuickMaxMillis < cfg.Latency.QuickMinMillis {
		return nil, fmt.Errorf("invalid latency window: max below min")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Wide returns the auth/ticket delay window.
func (l LatencyConfig) Wide() (time.Duration, time.Duration) {
	return time.Duration(l.WideMinMillis) * time.Millisecond,
		time.Duration(l.WideMaxMillis) * time.Millisecond
}

// Quick returns the customer/comment delay window.
func (l LatencyConfig) Quick() (time.Duration, time.Duration) {
	return time.Duration(l.QuickMinMillis) * time.Millisecond,
		time.Duration(l.QuickMaxMillis) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
