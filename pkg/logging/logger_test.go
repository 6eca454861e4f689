package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerWithCore(core), logs
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	require.NotNil(t, logger)
	require.NotNil(t, logger.sugar)
}

func TestNewNopLogger_DiscardsEverything(t *testing.T) {
	logger := NewNopLogger()
	assert.NotPanics(t, func() {
		logger.Error(context.Background(), "ignored", errors.New("boom"))
	})
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected zapcore.Level
	}{
		{"debug level", "DEBUG", zapcore.DebugLevel},
		{"info level", "INFO", zapcore.InfoLevel},
		{"warn level", "WARN", zapcore.WarnLevel},
		{"warning level", "WARNING", zapcore.WarnLevel},
		{"error level", "ERROR", zapcore.ErrorLevel},
		{"lowercase debug", "debug", zapcore.DebugLevel},
		{"mixed case", "Info", zapcore.InfoLevel},
		{"invalid level", "INVALID", zapcore.InfoLevel},
		{"empty value", "", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.envValue)
			assert.Equal(t, tt.expected, getLogLevelFromEnv())
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Run("generate correlation ID", func(t *testing.T) {
		id1 := GenerateCorrelationID()
		id2 := GenerateCorrelationID()

		assert.NotEmpty(t, id1)
		assert.NotEqual(t, id1, id2)
		_, err := uuid.Parse(id1)
		assert.NoError(t, err)
	})

	t.Run("context with correlation ID", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "test-correlation-id")
		assert.Equal(t, "test-correlation-id", GetCorrelationID(ctx))
	})

	t.Run("context without correlation ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})

	t.Run("auto-generate correlation ID", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")
		id := GetCorrelationID(ctx)
		assert.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})
}

func TestSanitizeArgs(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    any
		expected any
	}{
		{"password field", "password", "secret123", "[REDACTED]"},
		{"token field", "auth_token", "bearer-token", "[REDACTED]"},
		{"secret field", "api_secret", "my-secret", "[REDACTED]"},
		{"normal field", "username", "testuser", "testuser"},
		{"case insensitive password", "PASSWORD", "secret123", "[REDACTED]"},
		{"non-string value kept", "score", 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []any{tt.key, tt.value}
			out := sanitizeArgs(args)
			assert.Equal(t, tt.expected, out[1])
			assert.Equal(t, tt.value, args[1], "input slice is not modified")
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.DebugLevel)
	ctx := WithCorrelationID(context.Background(), "test-id-123")

	logger.Info(ctx, "test info message", "key", "value")
	logger.Error(ctx, "test error message", errors.New("test error"), "context", "test")
	logger.Debug(ctx, "debug message", "debug_key", "debug_value")
	logger.Warn(ctx, "warning message", "warn_key", "warn_value")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, "test info message", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "test-id-123", fields["correlation_id"])
	assert.Equal(t, "value", fields["key"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "test error", entries[1].ContextMap()["error"])

	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
}

func TestLoggerWith_CarriesFields(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.InfoLevel)
	child := logger.With("component", "engine", "session_token", "abc")

	child.Info(context.Background(), "started")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "engine", fields["component"])
	assert.Equal(t, "[REDACTED]", fields["session_token"])
}

func TestLogLevelFiltering(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.WarnLevel)
	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	logger.Warn(context.Background(), "shown")

	assert.Equal(t, 1, logs.Len())
}

func TestWrapError(t *testing.T) {
	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, WrapError(nil, "context"))
	})

	t.Run("wrap error with context", func(t *testing.T) {
		originalErr := errors.New("original error")
		wrapped := WrapError(originalErr, "additional context")

		assert.EqualError(t, wrapped, "additional context: original error")
		assert.ErrorIs(t, wrapped, originalErr)
	})

	t.Run("wrap error with formatted context", func(t *testing.T) {
		wrapped := WrapError(errors.New("original error"), "context with %s and %d", "string", 42)
		assert.EqualError(t, wrapped, "context with string and 42: original error")
	})
}

func TestLogWithoutCorrelationID(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.InfoLevel)
	logger.Info(context.Background(), "test message")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	_, present := entries[0].ContextMap()["correlation_id"]
	assert.False(t, present)
}
