package logger

import (
	"os"
	"strings"

	"preferred-observer/src/models"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// -----------------------------------------------------------------------------

// Logger provides structured logging functionality
type Logger struct {
	name  string
	base  *zap.Logger
	sugar *zap.SugaredLogger
	exit  func(int)
}

// -----------------------------------------------------------------------------

// NewLogger creates a new Logger instance. LOG_LEVEL overrides cfg.LogLevel.
func NewLogger(cfg *models.MConfig, name string) *Logger {
	level := "info"
	if cfg != nil && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}

	zc := zap.NewProductionConfig()
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.MessageKey = "msg"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Level.SetLevel(ParseLevel(level))

	base, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewNop()
	}
	return FromZap(base, name)
}

// -----------------------------------------------------------------------------

// FromZap wraps an existing zap logger.
func FromZap(base *zap.Logger, name string) *Logger {
	named := base
	if name != "" {
		named = base.Named(name)
	}
	return &Logger{
		name:  name,
		base:  named,
		sugar: named.Sugar(),
		exit:  os.Exit,
	}
}

// -----------------------------------------------------------------------------

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return FromZap(zap.NewNop(), "")
}

// -----------------------------------------------------------------------------

// Named returns a child logger.
func (l *Logger) Named(name string) *Logger {
	child := FromZap(l.base, name)
	child.exit = l.exit
	return child
}

// -----------------------------------------------------------------------------

// Zap exposes the underlying logger for structured fields.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// -----------------------------------------------------------------------------

func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// -----------------------------------------------------------------------------

func (l *Logger) Warning(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// -----------------------------------------------------------------------------

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// -----------------------------------------------------------------------------

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// -----------------------------------------------------------------------------

// Critical logs critical errors and exits the application
func (l *Logger) Critical(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
	_ = l.base.Sync()
	l.exit(1)
}

// -----------------------------------------------------------------------------

func (l *Logger) Sync() error {
	return l.base.Sync()
}

// -----------------------------------------------------------------------------

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "critical", "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
