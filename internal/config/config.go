package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Log       LogConfig
	CORS      CORSConfig
	Limits    LimitsConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// AuthConfig holds the bearer token settings.
type AuthConfig struct {
	Token string `mapstructure:"token"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LimitsConfig bounds the accepted input sizes.
type LimitsConfig struct {
	MaxTextLength int `mapstructure:"max_text_length"`
	MaxURLLength  int `mapstructure:"max_url_length"`
}

// RateLimitConfig holds the per-client request budget.
type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

// Load reads configuration from environment variables with the EXTRACTD_ prefix.
// A .env file is honored for local development if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("EXTRACTD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Auth defaults
	v.SetDefault("auth.token", "change-me-in-production")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Input limits
	v.SetDefault("limits.max_text_length", 10000)
	v.SetDefault("limits.max_url_length", 2048)

	// Rate limit defaults
	v.SetDefault("rate_limit.max_requests", 100)
	v.SetDefault("rate_limit.window_seconds", 3600)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "EXTRACTD_SERVER_PORT",
		"server.read_timeout":       "EXTRACTD_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "EXTRACTD_SERVER_WRITE_TIMEOUT",
		"server.environment":        "EXTRACTD_SERVER_ENVIRONMENT",
		"auth.token":                "EXTRACTD_AUTH_TOKEN",
		"log.level":                 "EXTRACTD_LOG_LEVEL",
		"log.format":                "EXTRACTD_LOG_FORMAT",
		"cors.allowed_origins":      "EXTRACTD_CORS_ALLOWED_ORIGINS",
		"limits.max_text_length":    "EXTRACTD_LIMITS_MAX_TEXT_LENGTH",
		"limits.max_url_length":     "EXTRACTD_LIMITS_MAX_URL_LENGTH",
		"rate_limit.max_requests":   "EXTRACTD_RATE_LIMIT_MAX_REQUESTS",
		"rate_limit.window_seconds": "EXTRACTD_RATE_LIMIT_WINDOW_SECONDS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if EXTRACTD_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("EXTRACTD_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Auth = AuthConfig{
		Token: v.GetString("auth.token"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Limits = LimitsConfig{
		MaxTextLength: v.GetInt("limits.max_text_length"),
		MaxURLLength:  v.GetInt("limits.max_url_length"),
	}
	cfg.RateLimit = RateLimitConfig{
		MaxRequests:   v.GetInt("rate_limit.max_requests"),
		WindowSeconds: v.GetInt("rate_limit.window_seconds"),
	}

	return cfg, nil
}
