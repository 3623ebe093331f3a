package dcmread

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
===============================================================================
    Logging
===============================================================================
*/

// logLevel is shared between all constructed loggers so that
// `SetLoggingLevel` takes effect regardless of output format
var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var logger = NewConsoleLogger(zapcore.Lock(os.Stderr))

// SetLogger replaces the package logger with `l`
func SetLogger(l *zap.SugaredLogger) {
	logger = l
}

// SetLoggingLevel takes a level string and accordingly adjusts the
// minimum level emitted by loggers constructed by this package:
// "debug" / "5": all levels
// "info" / "4": info and above
// "warn" / "3": warning and above
// "error" / "2": error and above
// "fatal" / "1": fatal only
// "disabled" / "none" / "off" / "0": nothing
func SetLoggingLevel(level string) {
	switch level {
	case "debug", "5":
		logLevel.SetLevel(zapcore.DebugLevel)
	case "info", "4":
		logLevel.SetLevel(zapcore.InfoLevel)
	case "warn", "3":
		logLevel.SetLevel(zapcore.WarnLevel)
	case "error", "2":
		logLevel.SetLevel(zapcore.ErrorLevel)
	case "fatal", "1":
		logLevel.SetLevel(zapcore.FatalLevel)
	case "disabled", "none", "off", "0":
		logLevel.SetLevel(zapcore.FatalLevel + 1)
	}
}

func normaliseWriters(writers ...zapcore.WriteSyncer) zapcore.WriteSyncer {
	if len(writers) == 1 {
		return writers[0]
	}
	return zapcore.NewMultiWriteSyncer(writers...)
}

// NewJSONLogger creates a `zap.SugaredLogger` configured for JSON output to `writers`
func NewJSONLogger(writers ...zapcore.WriteSyncer) *zap.SugaredLogger {
	writer := normaliseWriters(writers...)
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, logLevel)
	return zap.New(core).Sugar()
}

// NewConsoleLogger creates a `zap.SugaredLogger` configured for human-readable output to `writers`
func NewConsoleLogger(writers ...zapcore.WriteSyncer) *zap.SugaredLogger {
	writer := normaliseWriters(writers...)
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), writer, logLevel)
	return zap.New(core).Sugar()
}

// Infof logs to the package logger.
// Arguments are handled in the manner of fmt.Printf
func Infof(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// Info logs to the package logger.
// Arguments are handled in the manner of fmt.Print
func Info(v ...interface{}) {
	logger.Info(v...)
}

// Debugf logs to the package logger.
// Arguments are handled in the manner of fmt.Printf
func Debugf(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

// Debug logs to the package logger.
// Arguments are handled in the manner of fmt.Print
func Debug(v ...interface{}) {
	logger.Debug(v...)
}

// Warnf logs to the package logger.
// Arguments are handled in the manner of fmt.Printf
func Warnf(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

// Warn logs to the package logger.
// Arguments are handled in the manner of fmt.Print
func Warn(v ...interface{}) {
	logger.Warn(v...)
}

// Errorf logs to the package logger.
// Arguments are handled in the manner of fmt.Printf
func Errorf(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

// Error logs to the package logger.
// Arguments are handled in the manner of fmt.Print
func Error(v ...interface{}) {
	logger.Error(v...)
}

// Fatalf logs to the package logger, then exits.
// Arguments are handled in the manner of fmt.Printf
func Fatalf(format string, v ...interface{}) {
	logger.Fatalf(format, v...)
}

// Fatal logs to the package logger, then exits.
// Arguments are handled in the manner of fmt.Print
func Fatal(v ...interface{}) {
	logger.Fatal(v...)
}
