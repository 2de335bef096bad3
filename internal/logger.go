package application

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"github.com/rocketscienceinc/tictactoe/internal/config"
)

// NewLogger - builds the logger described by conf writing to out.
func NewLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if conf.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoe",
		Level:           log.Level(level),
	}))
}

// OpenLogFile - opens the configured log file for appending. The terminal
// belongs to the game, so logs never go to stdout while it runs.
func OpenLogFile(conf *config.Config) (*os.File, error) {
	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	return file, nil
}
