package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	logLevel = new(slog.LevelVar)

	// cliLog writes diagnostics to stderr; stdout carries results only.
	cliLog = newLogger(os.Stderr, "cli")
)

func newLogger(w io.Writer, component string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})
	return slog.New(h).With(slog.String("component", component))
}

func init() {
	logLevel.Set(slog.LevelWarn)
}

// parseLogLevel accepts debug, info, warn (or warning) and error.
func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (expected debug, info, warn or error)", name)
	}
}

func configureLogging(name string) error {
	level, err := parseLogLevel(name)
	if err != nil {
		return err
	}
	logLevel.Set(level)
	return nil
}
