package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

// queryLogger routes gorm's logging through the application logger.
// Statements go to debug, slow statements to warn and failures to error;
// record-not-found is not a failure.
type queryLogger struct {
	log           logger.Interface
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(log logger.Interface, slowThreshold time.Duration) *queryLogger {
	return &queryLogger{
		log:           log.Named("gorm"),
		level:         gormlogger.Info,
		slowThreshold: slowThreshold,
	}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.WithContext(ctx).Infow(fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.WithContext(ctx).Warnw(fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.WithContext(ctx).Errorw(fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	log := l.log.WithContext(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		log.Errorw("database error",
			"error", err,
			"elapsed", elapsed,
			"rows", rows,
			"sql", sql)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		log.Warnw("slow query",
			"elapsed", elapsed,
			"threshold", l.slowThreshold,
			"rows", rows,
			"sql", sql)
	case l.level >= gormlogger.Info:
		log.Debugw("database query",
			"elapsed", elapsed,
			"rows", rows,
			"sql", sql)
	}
}
