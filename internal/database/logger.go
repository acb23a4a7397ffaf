package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JonMunkholm/inventory/internal/logging"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold marks a query as slow in the logs.
const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output through slog so SQL entries carry the
// request id of the HTTP call that issued them.
type gormLogger struct {
	level gormlogger.LogLevel
}

func newGormLogger() gormlogger.Interface {
	return &gormLogger{level: gormlogger.Warn}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		logging.FromContext(ctx).Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		logging.FromContext(ctx).Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		logging.FromContext(ctx).Error(fmt.Sprintf(msg, data...))
	}
}

// Trace logs failed and slow statements; everything else goes out at debug.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	query, rows := fc()
	logger := logging.FromContext(ctx).With(
		"sql", query,
		"rows", rows,
		"duration_ms", elapsed.Milliseconds(),
	)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		logger.Error("query failed", "error", err)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		logger.Warn("slow query")
	default:
		logger.Debug("query")
	}
}
