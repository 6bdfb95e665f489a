package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// newLogger opens a file logger at path. The terminal belongs to the panel,
// so with no path logging is disabled.
func newLogger(path, level string) (zerolog.Logger, func() error, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log: %w", err)
	}

	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // user-chosen log file
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log: open %s: %w", path, err)
	}

	log := zerolog.New(f).Level(lvl).With().Timestamp().Str("app", "modelpanel").Logger()

	return log, f.Close, nil
}
