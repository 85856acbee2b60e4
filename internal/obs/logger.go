// Package obs wires up the structured logging and run-identification used
// by cmd/gomces (mcesapi does not import it): a zap.Logger configured per spec §10's
// ambient-stack expansion, and a uuid-stamped run ID attached to every
// batch/watch invocation so concurrent jobs' log lines can be told apart.
package obs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap.Logger at the given level ("debug", "info", "warn",
// "error"; defaults to "info" for anything else), console-encoded for local
// CLI use and JSON-encoded when json is true (batch/--watch runs piped into
// a log aggregator).
func NewLogger(level string, json bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if !json {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
