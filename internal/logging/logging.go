// Package logging builds the zap logger used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidLevel is returned by ParseLevel for names zap does not know.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel converts a level name such as "debug" or "WARN" to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return l, nil
}

// New returns a console-encoded logger writing to w at the given level.
// Output carries no timestamps or caller info so it reads cleanly on a
// terminal next to table output.
func New(level zapcore.Level, w zapcore.WriteSyncer) (*zap.Logger, error) {
	if w == nil {
		return nil, errors.New("logging: nil writer")
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), w, zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}
