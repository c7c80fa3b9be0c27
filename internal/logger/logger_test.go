package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tayloree/voicecart/internal/logger"
)

func TestNewLogger_Levels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		l, err := logger.NewLogger(lvl)
		require.NoError(t, err, lvl)
		assert.NotNil(t, l)
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := logger.NewLogger("loud")
	assert.Error(t, err)
}

func TestNop_DoesNotPanic(t *testing.T) {
	var nilLogger *logger.Logger
	assert.NotPanics(t, func() {
		logger.Nop().Info("hello")
		nilLogger.Error("boom", zap.String("k", "v"))
		_ = nilLogger.Sync()
	})
}

func TestWrap_WritesThrough(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.Wrap(zap.New(core))

	l.Debug("hidden")
	l.Info("shown", zap.Int("n", 1))
	l.Warn("careful")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
	assert.Equal(t, int64(1), logs.All()[0].ContextMap()["n"])
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}
