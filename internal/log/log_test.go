package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	t.Run("valid level", func(t *testing.T) {
		err := Initialize("warn")

		require.NoError(t, err)
		assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
		assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("empty level disables logger", func(t *testing.T) {
		err := Initialize("")

		require.NoError(t, err)
		assert.False(t, Logger.Core().Enabled(zapcore.FatalLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		require.NoError(t, Initialize("debug"))

		err := Initialize("loud")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "initializing logger")
		assert.False(t, Logger.Core().Enabled(zapcore.FatalLevel))
	})
}
