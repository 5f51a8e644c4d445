package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// newLogger writes JSON logs to path. The terminal belongs to the UI, so
// nothing goes to stderr once the program is running.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
