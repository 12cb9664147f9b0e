package logger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"locationreminder/internal/pkg/logger"
)

func newObserved() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    logger.Options
		wantErr bool
	}{
		{name: "json info", opts: logger.Options{Level: "info", Format: "json"}},
		{name: "console debug", opts: logger.Options{Level: "DEBUG", Format: "console"}},
		{name: "default format", opts: logger.Options{Level: "warn"}},
		{name: "invalid level", opts: logger.Options{Level: "loud"}, wantErr: true},
		{name: "invalid format", opts: logger.Options{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestLevels(t *testing.T) {
	l, logs := newObserved()

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message", errors.New("boom"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestGormLoggerTrace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is not an error", func(t *testing.T) {
		l, logs := newObserved()
		gl := logger.NewGormLogger(l, 0)

		gl.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("query errors are logged", func(t *testing.T) {
		l, logs := newObserved()
		gl := logger.NewGormLogger(l, 0)

		gl.Trace(context.Background(), time.Now(), sqlFn, errors.New("disk full"))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	})

	t.Run("slow queries are warned", func(t *testing.T) {
		l, logs := newObserved()
		gl := logger.NewGormLogger(l, time.Millisecond)

		gl.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, logs := newObserved()
		gl := logger.NewGormLogger(l, time.Millisecond).LogMode(gormlogger.Silent)

		gl.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, errors.New("disk full"))

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("info mode logs executed queries at debug", func(t *testing.T) {
		l, logs := newObserved()
		gl := logger.NewGormLogger(l, 0).LogMode(gormlogger.Info)

		gl.Trace(context.Background(), time.Now(), sqlFn, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	})
}

func TestParseGormLevel(t *testing.T) {
	level, err := logger.ParseGormLevel("info")
	require.NoError(t, err)
	assert.Equal(t, gormlogger.Info, level)

	level, err = logger.ParseGormLevel("")
	require.NoError(t, err)
	assert.Equal(t, gormlogger.Warn, level)

	_, err = logger.ParseGormLevel("chatty")
	assert.Error(t, err)
}
