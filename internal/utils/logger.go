package utils

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var Logger = logrus.New()

func init() {
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	Logger.SetLevel(logrus.InfoLevel)
	Logger.SetOutput(os.Stdout)
}

// SetLogLevel applies a textual level; unknown levels keep the current one.
func SetLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		LogError(err, "Invalid log level, keeping "+Logger.GetLevel().String())
		return
	}
	Logger.SetLevel(parsed)
}

// LogWriter is handed to gin so request lines end up in the JSON log.
func LogWriter() io.Writer {
	return &ginLogWriter{}
}

type ginLogWriter struct{}

func (w *ginLogWriter) Write(p []byte) (n int, err error) {
	Logger.WithField("source", "gin").Info(string(p))
	return len(p), nil
}

// GetGormLogger returns a GORM logger writing through Logger.
func GetGormLogger() logger.Interface {
	return &gormLogger{LogLevel: logger.Warn}
}

type gormLogger struct {
	LogLevel logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel < logger.Info {
		return
	}
	Logger.WithFields(logrus.Fields{"source": "gorm", "data": data}).Info(msg)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel < logger.Warn {
		return
	}
	Logger.WithFields(logrus.Fields{"source": "gorm", "data": data}).Warn(msg)
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel < logger.Error {
		return
	}
	Logger.WithFields(logrus.Fields{"source": "gorm", "data": data}).Error(msg)
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= logger.Silent {
		return
	}
	sql, rows := fc()
	fields := logrus.Fields{
		"source":  "gorm",
		"elapsed": time.Since(begin).String(),
		"sql":     sql,
		"rows":    rows,
	}

	// Missing rows are an expected outcome for point lookups.
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		fields["error"] = err.Error()
		Logger.WithFields(fields).Error("SQL query error")
		return
	}
	Logger.WithFields(fields).Debug("SQL query executed")
}

func LogSuccess(message string) {
	Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "success",
		"source":   "app",
	}).Info(message)
}

func LogInfo(message string) {
	Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"source":   "app",
	}).Info(message)
}

func LogError(err error, message string) {
	entry := Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "error",
		"source":   "app",
	})
	if err != nil {
		entry = entry.WithField("error", err.Error())
	}
	entry.Error(message)
}

func LogSuccessWithUser(userID int64, message string) {
	Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "success",
		"source":   "app",
		"user_id":  userID,
	}).Info(message)
}

func LogErrorWithUser(userID int64, err error, message string) {
	entry := Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "error",
		"source":   "app",
		"user_id":  userID,
	})
	if err != nil {
		entry = entry.WithField("error", err.Error())
	}
	entry.Error(message)
}

func getCaller() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}
