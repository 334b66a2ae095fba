// Package logger wraps zap with context-carried loggers: Setup picks a
// preset per environment, WithLogger/WithFields attach a logger to a
// context, and the leveled helpers log through whatever the context holds.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects the human-readable console preset.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment selects the JSON preset with sampling.
	ProductionEnvironment = "production"
)

// defaultLogger serves every context that carries no logger of its own.
var defaultLogger = zap.Must(zap.NewDevelopment()) //nolint: gochecknoglobals

// Setup replaces the default logger with the preset for the given
// environment. Anything other than "production" gets the development preset,
// so a missing or misspelled environment still logs.
func Setup(environment string) {
	switch environment {
	case ProductionEnvironment:
		defaultLogger = zap.Must(zap.NewProduction())
	default:
		defaultLogger = zap.Must(zap.NewDevelopment())
	}
}

// key is the context key under which a logger travels.
type key struct{}

// Get returns the logger carried by ctx, or the default logger when ctx
// carries none.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger returns a context carrying the given logger. Later Get and
// leveled-helper calls on the returned context use it instead of the default.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields returns a context whose logger carries the given fields on every
// message, e.g. tagging everything a verification batch logs with its batch
// ID.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Debug logs through the context logger at debug level.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs through the context logger at info level.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs through the context logger at warn level.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs through the context logger at error level.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs through the context logger at fatal level, then exits.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
