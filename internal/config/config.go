package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DBPath    string
	Addr      string
	JWTSecret string
}

// Load reads configuration from environment variables.
func Load() *Config {
	// Load .env file if it exists (for development).
	_ = godotenv.Load()

	return &Config{
		DBPath: getEnv("INVTRACK_DB", "invtrack.sqlite3"),
		Addr:   getEnv("INVTRACK_ADDR", ":8080"),
		// Empty means: use the secret persisted in the settings table.
		JWTSecret: getEnv("INVTRACK_JWT_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
