package logging

import (
	"testing"

	"aoc2024/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "warn", Format: "json"}, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = New(config.LoggingConfig{Level: "warn", Format: "console"}, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel), "verbose forces debug")

	_, err = New(config.LoggingConfig{Level: "chatty"}, false)
	assert.Error(t, err)
}

func TestGetNamesCategories(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Initialize(zap.New(core))
	t.Cleanup(func() { Initialize(nil) })

	runner := Get(CategoryRunner)
	assert.Same(t, runner, Get(CategoryRunner), "category loggers are cached")

	runner.Info("Solved", zap.Int("day", 3))
	Get(CategoryFetch).Warn("Retrying")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "runner", entries[0].LoggerName)
	assert.Equal(t, int64(3), entries[0].ContextMap()["day"])
	assert.Equal(t, "fetch", entries[1].LoggerName)
	assert.NoError(t, Sync())
}

func TestGetBeforeInitialize(t *testing.T) {
	Initialize(nil)
	l := Get(CategoryStore)
	require.NotNil(t, l)
	l.Info("dropped")
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Named(zap.New(core), CategoryWatch).Info("changed")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "watch", logs.All()[0].LoggerName)
	assert.NotNil(t, Named(nil, CategoryWatch))
}
