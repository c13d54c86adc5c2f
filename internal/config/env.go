package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the first .env file found.
// Existing process environment variables are not overwritten. Absence of an
// env file is not an error.
func LoadEnv() {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("failed to load env file", "path", path, "error", err)
			continue
		}
		slog.Debug("loaded environment variables", "path", path)
		return
	}
}
