package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactFields(t *testing.T) {
	got := redactFields([]interface{}{"ambiente_id", "a-1", "Authorization", "Bearer x", "jwt_token", "abc", "dangling"})
	assert.Equal(t, []interface{}{"ambiente_id", "a-1", "Authorization", "[REDACTED]", "jwt_token", "[REDACTED]", "dangling"}, got)
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "test").Info("[ambiente][usecase] update", "ambiente_id", "a-1", "password", "x")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "test", fields["component"])
		assert.Equal(t, "a-1", fields["ambiente_id"])
		assert.Equal(t, "[REDACTED]", fields["password"])
	}
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		production bool
		want       zapcore.Level
	}{
		{"development default", "", false, zapcore.DebugLevel},
		{"production default", "", true, zapcore.InfoLevel},
		{"explicit level", "WARN", false, zapcore.WarnLevel},
		{"explicit level in production", "debug", true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLevel(tt.level, tt.production)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := resolveLevel("verbose", false)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNew_HonoursLevelAndService(t *testing.T) {
	l, err := New(Options{Mode: "production", Level: "warn", Service: "gestao-cortinas"})
	require.NoError(t, err)
	assert.False(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.WarnLevel))

	_, err = New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("ignored", "k", "v")
	l.Sync()
}
