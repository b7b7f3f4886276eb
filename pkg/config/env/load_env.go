// Package env loads .env files for the portfolio binaries.
package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads a .env file into the process environment. ENV_PATH
// overrides the per-binary default path. A missing file is an error only
// for local runs; deployed environments inject real variables instead.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Info("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load env file in local mode", "error", err)
			return err
		}
		slog.Debug("No env file, relying on process environment")
	}

	return nil
}
