// Package logger provides the shared zap logger. The TUI owns the
// terminal, so log output goes to a file.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// Get returns a singleton logger writing to path at the given level.
// The first call initializes the logger; subsequent calls ignore the
// arguments and return the already initialized instance.
func Get(level, path string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level, path)
	})
	return globalLogger
}

func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func newZapLogger(levelStr, path string) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(cfg)

	sink, _, err := zap.Open(path)
	if err != nil {
		// No usable log file; stay silent rather than corrupt the TUI.
		return &Logger{SugaredLogger: zap.NewNop().Sugar()}
	}
	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(toZapLevel(levelStr)))
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}
