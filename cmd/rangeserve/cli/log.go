package cli

import (
	"log"
	"os"

	"golang.org/x/exp/slog"
)

var stderr = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)

// Logger is the structured logger used by the handler and the stores. It is
// configured by SetupStructuredLogger.
var Logger = slog.Default()

func SetupStructuredLogger() {
	level := slog.LevelInfo
	if Flags.VerboseOutput {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if Flags.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// printStartupLog prints the message only if -show-startup-logs is set.
func printStartupLog(msg string, args ...any) {
	if Flags.ShowStartupLogs {
		Logger.Info(msg, args...)
	}
}
