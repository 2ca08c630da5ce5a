// Package logging sets up slog with JSON output to a rotating file.
//
// The CLI logs to ~/.deepsearch/logs/deepsearch.log so that normal command
// output stays clean; --debug raises the level without changing the sink.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls the log sink and level.
type Config struct {
	// Level is debug, info, warn, or error. Unknown values mean info.
	Level string

	// FilePath is the log file location. Empty disables file logging
	// and logs to stderr only.
	FilePath string

	// MaxSizeMB is the rotation threshold per file.
	MaxSizeMB int

	// MaxFiles is how many rotated generations to keep.
	MaxFiles int

	// Stderr mirrors log records to stderr in addition to the file.
	Stderr bool
}

// DefaultConfig logs at info level to the default log file.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		FilePath:  DefaultLogPath(),
		MaxSizeMB: 10,
		MaxFiles:  5,
	}
}

// DebugConfig is DefaultConfig at debug level, mirrored to stderr.
func DebugConfig() Config {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.Stderr = true
	return cfg
}

// Setup builds a JSON slog.Logger per cfg. The returned cleanup flushes
// and closes the log file; callers must invoke it on shutdown.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	var sink io.Writer = os.Stderr
	cleanup := func() {}

	if cfg.FilePath != "" {
		writer, err := NewRotatingWriter(cfg.FilePath, cfg.MaxSizeMB, cfg.MaxFiles)
		if err != nil {
			return nil, nil, err
		}
		sink = writer
		if cfg.Stderr {
			sink = io.MultiWriter(writer, os.Stderr)
		}
		cleanup = func() {
			_ = writer.Sync()
			_ = writer.Close()
		}
	}

	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})
	return slog.New(handler), cleanup, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
