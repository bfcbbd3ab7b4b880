package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for the image host.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base of the durable image URLs handed to pages.
	// Defaults to the endpoint with the matching scheme.
	PublicURL   string
	ImageFolder string
}

// RedisConfig holds page cache and rate counter settings.
// An empty Addr disables Redis entirely.
type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	PageCacheTTLSec int
}

// ResendConfig holds transactional email settings for the contact form.
type ResendConfig struct {
	APIKey string
	From   string
	To     string
}

// AdminConfig holds the owner login settings.
type AdminConfig struct {
	JWTSecret      string
	PasswordHash   string
	TokenTTLMinute int
}

// RateLimitConfig bounds visitor review submissions per client IP.
type RateLimitConfig struct {
	Max       int
	WindowSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	LogLevel    string
	StoreDriver string
	SeedOnRead  bool
	Database    DatabaseConfig
	MinIO       MinIOConfig
	Redis       RedisConfig
	Resend      ResendConfig
	Admin       AdminConfig
	ReviewLimit RateLimitConfig
}

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	cfg := &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StoreDriver: getEnv("STORE_DRIVER", StoreDriverPostgres),
		SeedOnRead:  getEnvBool("SEED_ON_READ", true),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:    getEnv("MINIO_ENDPOINT", ""),
			AccessKey:   getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:   getEnv("MINIO_SECRET_KEY", ""),
			Bucket:      getEnv("MINIO_BUCKET", ""),
			UseSSL:      getEnvBool("MINIO_USE_SSL", false),
			PublicURL:   getEnv("MINIO_PUBLIC_URL", ""),
			ImageFolder: getEnv("IMAGE_FOLDER", "portfolio_images"),
		},
		Redis: RedisConfig{
			Addr:            getEnv("REDIS_ADDR", ""),
			Password:        getEnv("REDIS_PASSWORD", ""),
			DB:              getEnvInt("REDIS_DB", 0),
			PageCacheTTLSec: getEnvInt("PAGE_CACHE_TTL_SEC", 300),
		},
		Resend: ResendConfig{
			APIKey: getEnv("RESEND_API_KEY", ""),
			From:   getEnv("CONTACT_FROM", "Portfolio <onboarding@resend.dev>"),
			To:     getEnv("CONTACT_TO", ""),
		},
		Admin: AdminConfig{
			JWTSecret:      getEnv("ADMIN_JWT_SECRET", ""),
			PasswordHash:   getEnv("ADMIN_PASSWORD_HASH", ""),
			TokenTTLMinute: getEnvInt("ADMIN_TOKEN_TTL_MIN", 60),
		},
		ReviewLimit: RateLimitConfig{
			Max:       getEnvInt("REVIEW_RATE_LIMIT", 5),
			WindowSec: getEnvInt("REVIEW_RATE_WINDOW_SEC", 3600),
		},
	}

	if cfg.MinIO.PublicURL == "" && cfg.MinIO.Endpoint != "" {
		scheme := "http://"
		if cfg.MinIO.UseSSL {
			scheme = "https://"
		}
		cfg.MinIO.PublicURL = scheme + cfg.MinIO.Endpoint
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
