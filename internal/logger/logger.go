// Package logger builds the application's slog logger. The TUI runs on the
// alternate screen, so the default output is a file rather than stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogFileName is where file-mode logs go, in the working directory.
const LogFileName = "reviewterm.log"

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// New initializes a slog logger from cfg. When output is nil, the writer is
// chosen from cfg.Output (stdout, stderr, or file).
func New(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = writerFor(cfg.Output)
	}

	level := new(slog.Level)
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		*level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

func writerFor(output string) io.Writer {
	switch output {
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	case "file":
		file, err := os.OpenFile(LogFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			return os.Stderr
		}
		return file
	default:
		return os.Stderr
	}
}
