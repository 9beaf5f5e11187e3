package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	"github.com/MLR-5819/FSND-Fyyur/internal/messaging"
)

// Config holds the application configuration
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration
	SessionSecret  string
	MetricsEnabled bool
	StatsInterval  time.Duration

	ConsumerMetricsPort string

	Database      database.Config
	NATS          messaging.Config
	Elasticsearch ElasticsearchConfig
	Valkey        ValkeyConfig
}

// ValkeyConfig configures the listing cache
type ValkeyConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Load reads a .env file when present, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	return &Config{
		Port:           getEnv("PORT", "5000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,
		SessionSecret:  getEnv("SESSION_SECRET", "fyyur-dev-secret"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		StatsInterval:  time.Duration(getEnvInt("STATS_INTERVAL_SEC", 60)) * time.Second,

		ConsumerMetricsPort: getEnv("CONSUMER_METRICS_PORT", "9091"),

		Database: database.Config{
			URL:                os.Getenv("DATABASE_URL"),
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "fyyur"),
			Password:           getEnv("DB_PASSWORD", "fyyur"),
			DBName:             getEnv("DB_NAME", "fyyur"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		NATS: messaging.Config{
			Enabled:   getEnvBool("NATS_ENABLED", false),
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "fyyur"),
			ClientID:  getEnv("NATS_CLIENT_ID", "fyyur-api"),
		},

		Elasticsearch: LoadElasticsearchConfig(),

		Valkey: ValkeyConfig{
			Enabled:  getEnvBool("VALKEY_ENABLED", false),
			Addr:     getEnv("VALKEY_ADDR", "localhost:6379"),
			Password: os.Getenv("VALKEY_PASSWORD"),
			DB:       getEnvInt("VALKEY_DB", 0),
			TTL:      time.Duration(getEnvInt("VALKEY_TTL_SEC", 60)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	return defaultValue
}
