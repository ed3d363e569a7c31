package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	APIBaseURL  string
	HTTPTimeout time.Duration

	// StateDir holds the persisted session files (auth_user, auth_tokens).
	StateDir string

	// TokenRefreshInterval is how often the access token is silently renewed.
	TokenRefreshInterval time.Duration
}

func Load() Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	return Config{
		AppEnv:               getEnv("APP_ENV", "dev"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		APIBaseURL:           getEnv("API_BASE_URL", "https://api.arunclothshop.com/api"),
		HTTPTimeout:          getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		StateDir:             getEnv("STATE_DIR", defaultStateDir()),
		TokenRefreshInterval: getEnvDuration("TOKEN_REFRESH_INTERVAL", 30*time.Minute),
	}
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".arunshop"
	}
	return filepath.Join(base, "arunshop")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
