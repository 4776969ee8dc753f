package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	l.Debug(map[string]any{"host": "example.com"}, "debug msg")
	l.Info(nil, "info msg")
	l.Warn(map[string]any{"b": 2, "a": 1}, "warn msg")
	l.Error(nil, "error msg")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "example.com", entries[0].ContextMap()["host"])
	assert.Equal(t, "info msg", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	require.Len(t, entries[2].Context, 2)
	assert.Equal(t, "a", entries[2].Context[0].Key, "fields are emitted in key order")
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLogger(zap.New(core)).With(map[string]any{"component": "filter"})

	l.Info(map[string]any{"disposition": "approve"}, "decided")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "filter", ctx["component"])
	assert.Equal(t, "approve", ctx["disposition"])
}

func TestGlobalLogger_SetAndGet(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(NewZapLogger(zap.New(core)))

	Debug(nil, "d")
	Info(nil, "i")
	Warn(nil, "w")
	Error(nil, "e")

	assert.Equal(t, 4, logs.Len())
}

func TestConfigure(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	assert.NoError(t, Configure("dev", "debug"))
	assert.NoError(t, Configure("prod", "WARN"))
	assert.Error(t, Configure("dev", "notalevel"))
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Debug(nil, "x")
	l.Info(map[string]any{"k": "v"}, "x")
	l.Warn(nil, "x")
	l.Error(nil, "x")
	l.Fatal(nil, "x")
	assert.Equal(t, l, l.With(map[string]any{"k": "v"}))
}
