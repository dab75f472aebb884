// Package app initializes and holds the main components of the reviewterm
// client: configuration, logging, and the review service client.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/sevigo/reviewterm/internal/config"
	"github.com/sevigo/reviewterm/internal/logger"
	"github.com/sevigo/reviewterm/internal/review"
)

// App holds the shared components used by both the terminal UI and the
// one-shot CLI.
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Reviewer *review.Client
}

// New builds the application: environment config, optional .reviewterm.yml
// overrides from the working directory, the logger, and the review client.
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.Logging, nil)

	if wd, wdErr := os.Getwd(); wdErr == nil {
		local, localErr := config.LoadLocalConfig(wd)
		switch {
		case localErr == nil:
			local.Apply(cfg)
			log.Debug("applied .reviewterm.yml overrides", "dir", wd)
		case errors.Is(localErr, config.ErrLocalConfigNotFound):
			// Nothing to apply.
		default:
			log.Warn("ignoring broken .reviewterm.yml", "error", localErr)
		}
	}

	log.Info("reviewterm initialized",
		"server_url", cfg.ServerURL,
		"timeout", cfg.RequestTimeout,
		"default_language", cfg.DefaultLanguage)

	return &App{
		Cfg:      cfg,
		Logger:   log,
		Reviewer: review.NewClient(cfg.ServerURL, cfg.RequestTimeout, log),
	}, nil
}
