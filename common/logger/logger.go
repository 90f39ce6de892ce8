package logger

import (
	"log/slog"
	"os"
)

// NewLogger creates a new structured logger with JSON format
func NewLogger(serviceName string) *slog.Logger {
	// Get log level from environment (default: INFO)
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)

	// Add service name to all log entries
	return logger.With(slog.String("service", serviceName))
}

// NewReplicaLogger creates a logger for one replica of a service.
// Every entry carries the replica's component id so interleaved logs
// from several replicas stay attributable.
func NewReplicaLogger(serviceName string, componentID int) *slog.Logger {
	return NewLogger(serviceName).With(slog.Int("component_id", componentID))
}

func getLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
