// Package logger builds the process-wide zap logger.
//
// A terminal editor owns the screen, so logs never go to stderr while
// the UI runs. They go to a file: $VELLUM_LOG_FILE if set, otherwise
// vellum/vellum.log under the user cache directory.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to the log file at the given level name.
// An unwritable log path degrades to a no-op logger rather than
// scribbling on the UI.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	path := logPath()
	if path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), nil
	}
	return log, nil
}

func logPath() string {
	if p := os.Getenv("VELLUM_LOG_FILE"); p != "" {
		return p
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vellum", "vellum.log")
}
