package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type zapLogger struct {
	logger *zap.Logger
}

// Options selects the level and encoding of the logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// New creates a zap backed Logger.
func New(opts Options) (Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	var cfg zap.Config
	switch opts.Format {
	case "", "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &zapLogger{logger: l}, nil
}

// FromZap wraps an existing zap logger.
func FromZap(l *zap.Logger) Logger {
	return &zapLogger{logger: l.WithOptions(zap.AddCallerSkip(1))}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &zapLogger{logger: zap.NewNop()}
}

// Sync flushes buffered log entries if l is zap backed.
func Sync(l Logger) error {
	if z, ok := l.(*zapLogger); ok {
		return z.logger.Sync()
	}
	return nil
}

func (l *zapLogger) Error(msg string, err error) {
	l.logger.Error(msg, zap.Error(err))
}

func (l *zapLogger) Warn(msg string) {
	l.logger.Warn(msg)
}

func (l *zapLogger) Info(msg string) {
	l.logger.Info(msg)
}

func (l *zapLogger) Debug(msg string) {
	l.logger.Debug(msg)
}
