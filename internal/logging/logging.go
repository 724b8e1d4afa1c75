// Package logging builds the zap logger shared by shnote commands.
//
// Log output goes to stderr only: stdout belongs to the WHAT/WHY preamble and
// the child process.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel selects the log level (debug, info, warn, error).
const EnvLevel = "SHNOTE_LOG"

// DefaultLevel keeps normal runs silent unless something fails.
const DefaultLevel = zapcore.ErrorLevel

// ParseLevel converts a level name to a zap level. Empty means DefaultLevel.
func ParseLevel(raw string) (zapcore.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
		return DefaultLevel, fmt.Errorf("invalid %s value %q: %w", EnvLevel, raw, err)
	}
	return lvl, nil
}

// New builds a console logger writing to w at the given level.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core).Named("shnote")
}

// FromEnv builds the stderr logger configured by SHNOTE_LOG. An invalid level
// falls back to DefaultLevel and is reported through the logger itself.
func FromEnv() *zap.Logger {
	lvl, err := ParseLevel(os.Getenv(EnvLevel))
	logger := New(os.Stderr, lvl)
	if err != nil {
		logger.Warn("ignoring log level", zap.Error(err))
	}
	return logger
}

type ctxKey struct{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && logger != nil {
			return logger
		}
	}
	return zap.NewNop()
}
