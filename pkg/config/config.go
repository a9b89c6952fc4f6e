package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	RecordStore RecordStoreConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Log         LogConfig
	Sessions    SessionsConfig
	Counters    CountersConfig
	Audit       AuditConfig
	Metrics     MetricsConfig
}

// RecordStoreConfig points the portal at the upstream employee record store.
type RecordStoreConfig struct {
	BaseURL string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SessionsConfig governs view-session lifetimes and page sizing.
type SessionsConfig struct {
	TTL               time.Duration
	SweepInterval     time.Duration
	DirectoryPageSize int
	IntercomPageSize  int
}

// CountersConfig tunes caching for the shared recycle/pending counters.
type CountersConfig struct {
	CacheTTL     time.Duration
	CacheEnabled bool
}

// AuditConfig controls the bulk-intent audit trail.
type AuditConfig struct {
	Enabled    bool
	Workers    int
	BufferSize int
	MaxRetries int
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.RecordStore = RecordStoreConfig{
		BaseURL: strings.TrimRight(v.GetString("RECORD_STORE_URL"), "/"),
		Timeout: parseDuration(v.GetString("RECORD_STORE_TIMEOUT"), 15*time.Second),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Sessions = SessionsConfig{
		TTL:               parseDuration(v.GetString("SESSION_TTL"), 30*time.Minute),
		SweepInterval:     parseDuration(v.GetString("SESSION_SWEEP_INTERVAL"), 5*time.Minute),
		DirectoryPageSize: v.GetInt("DIRECTORY_PAGE_SIZE"),
		IntercomPageSize:  v.GetInt("INTERCOM_PAGE_SIZE"),
	}

	cfg.Counters = CountersConfig{
		CacheTTL:     parseDuration(v.GetString("COUNTERS_CACHE_TTL"), time.Minute),
		CacheEnabled: v.GetBool("COUNTERS_CACHE_ENABLED"),
	}

	cfg.Audit = AuditConfig{
		Enabled:    v.GetBool("ENABLE_INTENT_AUDIT"),
		Workers:    v.GetInt("INTENT_AUDIT_WORKERS"),
		BufferSize: v.GetInt("INTENT_AUDIT_BUFFER"),
		MaxRetries: v.GetInt("INTENT_AUDIT_RETRIES"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("RECORD_STORE_URL", "http://localhost:9090")
	v.SetDefault("RECORD_STORE_TIMEOUT", "15s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "emp_portal")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "5m")
	v.SetDefault("DIRECTORY_PAGE_SIZE", 15)
	v.SetDefault("INTERCOM_PAGE_SIZE", 8)

	v.SetDefault("COUNTERS_CACHE_TTL", "1m")
	v.SetDefault("COUNTERS_CACHE_ENABLED", true)

	v.SetDefault("ENABLE_INTENT_AUDIT", false)
	v.SetDefault("INTENT_AUDIT_WORKERS", 1)
	v.SetDefault("INTENT_AUDIT_BUFFER", 64)
	v.SetDefault("INTENT_AUDIT_RETRIES", 3)

	v.SetDefault("ENABLE_METRICS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
