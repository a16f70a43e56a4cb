package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until InitLogger runs so
// packages can log safely in tests.
var Log = zap.NewNop()

// InitLogger builds the global logger. Format "console" switches to the
// human-readable development encoder.
func InitLogger(service, level, format string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	Log = logger.With(zap.String("service", service))
	return Log
}
