package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a new logger that appends JSON to the specified file.
// If file is empty, logs are discarded so they never draw over the TUI.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	if file == "" {
		return NewWithWriter(level, io.Discard)
	}

	logsDir := filepath.Dir(file)
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
	}

	osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
	}

	l, _, err := NewWithWriter(level, osFile)
	if err != nil {
		_ = osFile.Close()
		return zerolog.Logger{}, closer, err
	}

	return l, func() { _ = osFile.Close() }, nil
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(level string, w io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level: %w", err)
	}

	l := zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
