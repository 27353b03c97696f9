package log_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/localchan/effects/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogEffect_WritesThroughZap(t *testing.T) {
	ctx, end, logs := log.WithTestEffectHandler(context.Background())
	defer end()

	log.LogEffect(ctx, log.LogWarn, "filter rejected key", map[string]interface{}{
		"component": "filter",
	})

	require.Eventually(t, func() bool {
		return logs.Len() == 1
	}, time.Second, 10*time.Millisecond)

	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "filter rejected key", entry.Message)
	assert.Equal(t, "filter", entry.ContextMap()["component"])
}

func TestLogEffect_LevelsMapToZap(t *testing.T) {
	ctx, end, logs := log.WithTestEffectHandler(context.Background())
	defer end()

	log.LogEffect(ctx, log.LogDebug, "d", nil)
	log.LogEffect(ctx, log.LogInfo, "i", nil)
	log.LogEffect(ctx, log.LogError, "e", nil)
	log.LogEffect(ctx, log.LogLevel("custom"), "c", nil)

	require.Eventually(t, func() bool {
		return logs.Len() == 4
	}, time.Second, 10*time.Millisecond)

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	assert.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.ErrorLevel, zapcore.InfoLevel}, levels)
}

func TestLogEffect_WithoutHandlerDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		log.LogEffect(context.Background(), log.LogInfo, "no handler", nil)
	})
}

func TestLogEffect_WithoutHandlerKeepsLevel(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	log.LogEffect(context.Background(), log.LogError, "query failed", map[string]interface{}{
		"component": "search",
	})
	log.LogEffect(context.Background(), log.LogDebug, "query changed", nil)

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "query failed", entries[0].Message)
	assert.Equal(t, "search", entries[0].ContextMap()["component"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}
