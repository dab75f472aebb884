package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrLocalConfigNotFound = errors.New("local config file not found")
	ErrLocalConfigParsing  = errors.New("local config parsing failed")
)

// LocalConfig is the structure of an optional .reviewterm.yml in the working
// directory. It overrides per-project presentation settings only; the server
// contract stays in the environment config.
type LocalConfig struct {
	Theme           string `yaml:"theme"`
	DefaultLanguage string `yaml:"default_language"`
	ReportDir       string `yaml:"report_dir"`
}

// LoadLocalConfig loads and parses the .reviewterm.yml file from dir.
func LoadLocalConfig(dir string) (*LocalConfig, error) {
	path := filepath.Join(dir, ".reviewterm.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LocalConfig{}, ErrLocalConfigNotFound
		}
		return nil, fmt.Errorf("failed to read .reviewterm.yml: %w", err)
	}

	local := &LocalConfig{}
	if err := yaml.Unmarshal(data, local); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocalConfigParsing, err)
	}
	return local, nil
}

// Apply overlays the non-empty local settings onto cfg.
func (l *LocalConfig) Apply(cfg *Config) {
	if l.Theme != "" {
		cfg.Theme = l.Theme
	}
	if l.DefaultLanguage != "" {
		cfg.DefaultLanguage = l.DefaultLanguage
	}
	if l.ReportDir != "" {
		cfg.ReportDir = l.ReportDir
	}
}
