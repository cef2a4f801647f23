// Package log provides the application's zap logger behind package-level helpers.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = newConsole(zapcore.InfoLevel).Sugar()

// Init replaces the package-level logger. Debug enables debug-level entries
// annotated with the caller, otherwise only info and above are written.
func Init(debug bool) {
	if debug {
		log = newConsole(zapcore.DebugLevel, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
		return
	}
	log = newConsole(zapcore.InfoLevel).Sugar()
}

// newConsole writes human readable entries to stderr, stdout is left for
// the command's own output.
func newConsole(level zapcore.Level, opts ...zap.Option) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), level)
	return zap.New(core, opts...)
}

// Sync flushes any buffered log entries
func Sync() {
	_ = log.Sync()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	log.Debugw(msg, keysAndValues...)
}

func Debugf(template string, args ...interface{}) {
	log.Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	log.Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	log.Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...interface{}) {
	log.Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	log.Errorf(template, args...)
}

// Fatal logs at error level, flushes, and exits with status 1.
func Fatal(args ...interface{}) {
	log.Error(args...)
	Sync()
	os.Exit(1)
}

// Fatalf is Fatal with a format string.
func Fatalf(template string, args ...interface{}) {
	log.Errorf(template, args...)
	Sync()
	os.Exit(1)
}
