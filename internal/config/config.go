package config

import "os"

// Defaults match the development setup; override them through the
// environment for anything real.
const (
	defaultUsername   = "admin"
	defaultPassword   = "default"
	defaultSessionKey = "dev-session-key-change-me-in-prod!!"
)

// Config represents the configuration settings of the application,
// resolved once at startup.
type Config struct {
	Addr       string
	DSN        string
	Username   string
	Password   string
	SessionKey string
}

// Load builds the configuration from the given flags and the process
// environment.
func Load(addr, dsn string) Config {
	return Config{
		Addr:       addr,
		DSN:        dsn,
		Username:   envOr("FLASKR_USERNAME", defaultUsername),
		Password:   envOr("FLASKR_PASSWORD", defaultPassword),
		SessionKey: envOr("FLASKR_SESSION_KEY", defaultSessionKey),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
