package config

import (
	"os"

	"github.com/djsar/stagepage/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	App    AppConfig
	Redis  database.RedisConfig
	Media  MediaConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

// AppConfig holds the edge routing configuration: the root domain profile
// subdomains hang off, the static-asset origin requests fall through to,
// and the optional signup webhook.
type AppConfig struct {
	RootDomain       string
	AssetsOrigin     string
	SignupWebhookURL string
	Environment      string
}

// MediaConfig holds profile-image storage configuration
type MediaConfig struct {
	PublicBaseURL string
	S3Region      string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	S3Bucket      string
	S3UseSSL      bool
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		App: AppConfig{
			RootDomain:       getEnv("ROOT_DOMAIN", "djs.ar"),
			AssetsOrigin:     getEnv("ASSETS_ORIGIN", "http://localhost:9000"),
			SignupWebhookURL: getEnv("SIGNUP_WEBHOOK_URL", ""),
			Environment:      getEnv("APP_ENV", "development"),
		},
		Redis: database.RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Media: MediaConfig{
			PublicBaseURL: getEnv("MEDIA_PUBLIC_BASE_URL", "https://media.djs.ar"),
			S3Region:      getEnv("S3_REGION", "auto"),
			S3Endpoint:    getEnv("S3_ENDPOINT", ""),
			S3AccessKey:   getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:   getEnv("S3_SECRET_KEY", ""),
			S3Bucket:      getEnv("S3_BUCKET", "profile-media"),
			S3UseSSL:      getEnv("S3_USE_SSL", "true") == "true",
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
