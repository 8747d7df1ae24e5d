package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide sugared logger. It starts as a no-op so packages
// can log unconditionally before Initialize runs.
var Log = zap.NewNop().Sugar()

// Initialize replaces Log with a production zap logger at the given level.
// The level accepts anything zapcore.ParseLevel does ("debug", "info", ...).
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl.Sugar()
	return nil
}
