package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the minimal logging interface used across services.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// New builds the underlying zap logger from the configured level and format.
func New(levelStr, format string) *zap.Logger {
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, _ := cfg.Build()
	return logger
}

// wrapper adapts zap.Logger to the Logger interface.
type wrapper struct {
	l *zap.Logger
}

func (w *wrapper) Debug(msg string, fields map[string]interface{}) {
	w.l.Debug(msg, toZapFields(fields)...)
}

func (w *wrapper) Info(msg string, fields map[string]interface{}) {
	w.l.Info(msg, toZapFields(fields)...)
}

func (w *wrapper) Warn(msg string, fields map[string]interface{}) {
	w.l.Warn(msg, toZapFields(fields)...)
}

func (w *wrapper) Error(msg string, fields map[string]interface{}) {
	w.l.Error(msg, toZapFields(fields)...)
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

// NewZapAdapter wraps an existing *zap.Logger to implement the Logger interface.
func NewZapAdapter(l *zap.Logger) Logger {
	return &wrapper{l: l}
}

// NewNoOpLogger creates a Logger that discards everything.
func NewNoOpLogger() Logger {
	return &wrapper{l: zap.NewNop()}
}
