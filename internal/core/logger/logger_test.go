package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestInit verifies logger initialization for different environments.
func TestInit(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		err := Init("development", "debug")
		require.NoError(t, err)
		assert.True(t, Get().Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		err := Init("production", "info")
		require.NoError(t, err)
		assert.False(t, Get().Core().Enabled(zap.DebugLevel))
		assert.True(t, Get().Core().Enabled(zap.InfoLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		err := Init("development", "invalid_level")
		require.NoError(t, err)
	})
}

// TestGet verifies that Get never returns nil.
func TestGet(t *testing.T) {
	restore := Replace(nil)
	defer restore()

	assert.NotNil(t, Get())
}

// TestReplace verifies that Replace installs a logger and restores the previous one.
func TestReplace(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	restore := Replace(zap.New(core))
	Get().Info("banner fetched", zap.String("session_id", "s-1"))
	restore()
	Get().Info("after restore")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "banner fetched", logs.All()[0].Message)
	assert.Equal(t, "s-1", logs.All()[0].ContextMap()["session_id"])
}

// TestSync verifies that Sync does not panic even if logger is nil.
func TestSync(t *testing.T) {
	restore := Replace(nil)
	Sync()
	restore()

	Init("development", "info")
	Sync()
}
