// Package logging provides structured logging for go-breakout.
// It wraps zap to provide consistent logging patterns with correlation
// IDs, error context preservation, and masking of sensitive keys.
package logging

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "BREAKOUT_LOG_LEVEL"

// Logger wraps a zap logger behind a context-first API.
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a Logger writing JSON to stderr. Stdout is left to
// the terminal renderer. The level is read from BREAKOUT_LOG_LEVEL
// (DEBUG, INFO, WARN, ERROR) and defaults to INFO.
func NewLogger() *Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(getLogLevelFromEnv()),
	)
	return NewLoggerWithCore(core)
}

// NewLoggerWithCore builds a Logger on an existing zap core.
func NewLoggerWithCore(core zapcore.Core) *Logger {
	return &Logger{sugar: zap.New(core).Sugar()}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// With returns a child logger that always carries the given key-value pairs.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{sugar: l.sugar.With(sanitizeArgs(args)...)}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// LogWithContext logs at level, adding the correlation ID from ctx when
// one is present.
func (l *Logger) LogWithContext(ctx context.Context, level zapcore.Level, msg string, args ...any) {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		args = append(args, "correlation_id", correlationID)
	}
	l.sugar.Logw(level, msg, sanitizeArgs(args)...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, zapcore.InfoLevel, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, zapcore.WarnLevel, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, zapcore.ErrorLevel, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, zapcore.DebugLevel, msg, args...)
}

// correlationIDKey is the context key for correlation IDs
type correlationIDKey struct{}

// WithCorrelationID adds a correlation ID to the context.
// If no correlation ID is provided, a new one will be generated.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if correlationID == "" {
		correlationID = GenerateCorrelationID()
	}
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// GetCorrelationID extracts the correlation ID from the context.
// Returns empty string if no correlation ID is present.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID creates a new random correlation ID.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

func getLogLevelFromEnv() zapcore.Level {
	switch strings.ToUpper(os.Getenv(LevelEnv)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

var sensitiveKeys = []string{
	"password", "passwd", "pwd",
	"token", "auth", "authorization",
	"secret", "private", "cookie",
}

// sanitizeArgs masks the value of any key-value pair whose key looks
// like it carries a credential.
func sanitizeArgs(args []any) []any {
	out := make([]any, len(args))
	copy(out, args)
	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok {
			continue
		}
		lower := strings.ToLower(key)
		for _, sensitive := range sensitiveKeys {
			if strings.Contains(lower, sensitive) {
				out[i+1] = "[REDACTED]"
				break
			}
		}
	}
	return out
}

// WrapError wraps an error with additional context information.
// This preserves the original error while adding descriptive context.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
