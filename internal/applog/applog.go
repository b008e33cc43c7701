// Package applog routes structured logs to a file while the TUI owns the
// terminal.
package applog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// Open returns a JSON logger writing to path and installs it as the slog
// default. An empty path discards all output. The returned close func is
// never nil.
func Open(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "strait-current")
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(f, nil))
	slog.SetDefault(logger)
	return logger, f.Close, nil
}
