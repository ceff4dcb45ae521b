package config

import (
	"os"
	"strings"
)

// Config holds the core runtime configuration for the service.
// Values are primarily sourced from environment variables, with
// sensible defaults where appropriate. See .env.example.
type Config struct {
	AdminUser     string
	AdminPassword string

	DatabaseURL string

	ListenAddr string

	// OpenF1BaseURL is the base URL of the OpenF1 telemetry API that
	// official results are fetched from. Override when pointing at a
	// mirror or a test fixture server.
	OpenF1BaseURL string

	// SeasonYear is the championship season this instance serves. The
	// calendar and driver roster in internal/season are fixed to it.
	SeasonYear int

	// AllowedOrigins is the list of origins the CORS middleware will
	// echo back. "*" allows any origin.
	AllowedOrigins []string
}

// Load reads configuration from environment variables and applies defaults.
func Load() *Config {
	cfg := &Config{
		AdminUser:     getenv("APP_ADMIN_USER", "admin"),
		AdminPassword: getenv("APP_ADMIN_PASSWORD", "changeme"),
		DatabaseURL:   os.Getenv("APP_DATABASE_URL"),
		ListenAddr:    getenv("APP_LISTEN_ADDR", ":8080"),
		OpenF1BaseURL: getenv("APP_OPENF1_BASE_URL", "https://api.openf1.org/v1"),
		SeasonYear:    2026,
	}

	for _, o := range strings.Split(getenv("APP_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
