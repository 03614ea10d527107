package common

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.SugaredLogger]

// Logger returns the process logger. It is a no-op until SetupLogger runs.
func Logger() *zap.SugaredLogger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop().Sugar()
}

// SetupLogger builds the process logger at level and installs it.
func SetupLogger(level string, development bool) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("common: parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = !development

	base, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("common: build logger: %w", err)
	}
	sugar := base.Sugar()
	logger.Store(sugar)
	return sugar, nil
}
