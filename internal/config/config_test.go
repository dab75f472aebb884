package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "cyan", cfg.Theme)
	assert.Equal(t, "python", cfg.DefaultLanguage)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "SERVER_URL=http://reviewer.internal:8080\nREQUEST_TIMEOUT=10\nTHEME=matrix\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Chdir(dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://reviewer.internal:8080", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "matrix", cfg.Theme)
}

func TestLoadConfigRejectsInvalidServerURL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_URL=not a url\n"), 0o600))
	t.Chdir(dir)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadLocalConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, l *LocalConfig)
	}{
		{
			name: "valid overrides",
			yaml: "theme: dracula\ndefault_language: go\n",
			check: func(t *testing.T, l *LocalConfig) {
				assert.Equal(t, "dracula", l.Theme)
				assert.Equal(t, "go", l.DefaultLanguage)
			},
		},
		{
			name:    "missing file",
			yaml:    "",
			wantErr: ErrLocalConfigNotFound,
		},
		{
			name:    "broken yaml",
			yaml:    "theme: [unclosed\n",
			wantErr: ErrLocalConfigParsing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.yaml != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ".reviewterm.yml"), []byte(tt.yaml), 0o600))
			}
			local, err := LoadLocalConfig(dir)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, local)
		})
	}
}

func TestLocalConfigApply(t *testing.T) {
	cfg := &Config{Theme: "cyan", DefaultLanguage: "python", ReportDir: "reports"}

	(&LocalConfig{Theme: "fire"}).Apply(cfg)
	assert.Equal(t, "fire", cfg.Theme)
	// Empty overrides must not clobber.
	assert.Equal(t, "python", cfg.DefaultLanguage)
	assert.Equal(t, "reports", cfg.ReportDir)
}
