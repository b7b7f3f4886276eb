package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mpavlovic/devfolio/pkg/config/env"
	"github.com/mpavlovic/devfolio/pkg/utils"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string

	DatabaseURL string
	// AdminToken guards the /admin surface. Empty disables admin routes.
	AdminToken string

	OpenAIAPIKey string
	// BloggenSettingsPath optionally points at a YAML file tuning generation.
	BloggenSettingsPath string
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/portfolio_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	var origins []string
	corsOriginsEnv := os.Getenv("CORS_ORIGINS")
	if corsOriginsEnv != "" {
		origins = strings.Split(corsOriginsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		origins = utils.RemoveEmptyStrings(origins)
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:                port,
		UseHttp2:            useHttp2,
		CorsOrigins:         origins,
		DatabaseURL:         dbURL,
		AdminToken:          os.Getenv("ADMIN_TOKEN"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		BloggenSettingsPath: os.Getenv("BLOGGEN_SETTINGS_PATH"),
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
