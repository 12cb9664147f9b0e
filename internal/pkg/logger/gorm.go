package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM query logging into a Logger.
type GormLogger struct {
	log           Logger
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
}

// NewGormLogger creates a GormLogger at Warn level.
func NewGormLogger(log Logger, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		log:           log,
		SlowThreshold: slowThreshold,
		LogLevel:      gormlogger.Warn,
	}
}

// ParseGormLevel maps silent/error/warn/info onto GORM levels.
func ParseGormLevel(s string) (gormlogger.LogLevel, error) {
	switch s {
	case "silent":
		return gormlogger.Silent, nil
	case "error":
		return gormlogger.Error, nil
	case "", "warn":
		return gormlogger.Warn, nil
	case "info":
		return gormlogger.Info, nil
	}
	return gormlogger.Silent, fmt.Errorf("invalid gorm log level %q", s)
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level

	return &newLogger
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if l.LogLevel >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.LogLevel >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if l.LogLevel >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, args...), nil)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.log.Error(fmt.Sprintf("query error: duration=%s rows=%d sql=%s", elapsed, rows, sql), err)
	case elapsed > l.SlowThreshold && l.SlowThreshold > 0 && l.LogLevel >= gormlogger.Warn:
		l.log.Warn(fmt.Sprintf("slow query: duration=%s threshold=%s rows=%d sql=%s", elapsed, l.SlowThreshold, rows, sql))
	case l.LogLevel >= gormlogger.Info:
		l.log.Debug(fmt.Sprintf("query executed: duration=%s rows=%d sql=%s", elapsed, rows, sql))
	}
}
