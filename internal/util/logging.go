// Package util provides common utilities: the file-backed debug logger and
// data-directory resolution.
package util

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// NewLogger returns a file-backed development logger when debug is on, and a
// no-op logger otherwise. The TUI owns stdout and stderr for the whole run,
// so log output must never reach the terminal.
func NewLogger(debug bool, path string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
