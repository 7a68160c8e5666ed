// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger
}

// NewLogger creates a production zap logger at the given level, falling back
// to error level if the string does not parse.
func NewLogger(level string) *Logger {
	l := new(Logger)

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	l.SugaredLogger = logger.Sugar()

	return l
}

// NewNoopLogger returns a logger that discards everything, for tests.
func NewNoopLogger() *Logger {
	l := new(Logger)
	l.SugaredLogger = zap.NewNop().Sugar()
	return l
}
