// Package log provides the application logger, a zap SugaredLogger behind
// package-level helpers.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var (
	baseLogger *zap.Logger
	sugar      *zap.SugaredLogger
)

// Init initializes the package-level logger.
func Init(debug bool) error {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	baseLogger = zapLogger
	sugar = zapLogger.Sugar()
	return nil
}

// SetLogger replaces the package logger. Tests use it with zap.NewNop or an
// observer core.
func SetLogger(l *zap.Logger) {
	baseLogger = l
	sugar = l.Sugar()
}

// Logger returns the sugared logger, creating a production one on first use.
func Logger() *zap.SugaredLogger {
	if sugar == nil {
		baseLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
		sugar = baseLogger.Sugar()
	}
	return sugar
}

// Sync flushes any buffered log entries.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

func Debugf(template string, args ...interface{}) {
	Logger().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	Logger().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	Logger().Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...interface{}) {
	Logger().Warnf(template, args...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	Logger().Warnw(msg, keysAndValues...)
}

func Errorf(template string, args ...interface{}) {
	Logger().Errorf(template, args...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	Logger().Errorw(msg, keysAndValues...)
}

func Fatalf(template string, args ...interface{}) {
	Logger().Fatalf(template, args...)
}
