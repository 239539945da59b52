package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/dicee/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "json"}
	logger, err := NewLogger(cfg, "advisord")
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.Equal(t, "advisord", logger.Name())
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.LoggingConfig{Level: "debug", Format: "console"}
	logger, err := NewLogger(cfg, "")
	require.NoError(t, err)
	assert.Empty(t, logger.Name())
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := config.LoggingConfig{Level: "trace", Format: "json"}
	_, err := NewLogger(cfg, "dicee")
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "xml"}
	_, err := NewLogger(cfg, "dicee")
	assert.Error(t, err)
}

func TestNewLogger_LevelGatesOutput(t *testing.T) {
	levels := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for name, level := range levels {
		logger, err := NewLogger(config.LoggingConfig{Level: name, Format: "json"}, "dicee")
		require.NoError(t, err, "level %q should be valid", name)
		assert.True(t, logger.Core().Enabled(level))
		assert.False(t, logger.Core().Enabled(level-1), "level %q should suppress below itself", name)
	}
}
