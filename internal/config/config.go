// Package config loads the client configuration from the environment, an
// optional .env file, and a project-local .reviewterm.yml override.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/reviewterm/internal/logger"
)

// Config holds the application's configuration values. The maximum accepted
// input length is deliberately not here: it is a fixed contract with the
// service (review.MaxCodeLen), not a tunable.
type Config struct {
	ServerURL       string
	RequestTimeout  time.Duration
	Theme           string
	DefaultLanguage string
	ReportDir       string
	Logging         logger.Config
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates the server URL. Viper handles precedence: the
// environment wins over the .env file, which wins over defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("SERVER_URL", "http://localhost:5000")
	v.SetDefault("REQUEST_TIMEOUT", 60)
	v.SetDefault("THEME", "cyan")
	v.SetDefault("DEFAULT_LANGUAGE", "python")
	v.SetDefault("REPORT_DIR", "reports")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "file")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			// A missing .env is fine; a broken one is worth a warning but
			// should not stop the client.
			slog.Warn("failed to read .env file", "error", err)
		}
	}

	serverURL := v.GetString("SERVER_URL")
	if _, err := url.ParseRequestURI(serverURL); err != nil {
		return nil, fmt.Errorf("SERVER_URL %q is not a valid URL: %w", serverURL, err)
	}

	timeout := v.GetInt("REQUEST_TIMEOUT")
	if timeout < 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must not be negative, got %d", timeout)
	}

	return &Config{
		ServerURL:       serverURL,
		RequestTimeout:  time.Duration(timeout) * time.Second,
		Theme:           v.GetString("THEME"),
		DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		ReportDir:       v.GetString("REPORT_DIR"),
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}, nil
}
