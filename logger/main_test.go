package logger

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	var out bytes.Buffer
	logger, err := New("warn", FormatConsole, zapcore.AddSync(&out))
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = New("", "", zapcore.AddSync(&out))
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = New("verbose", FormatConsole, zapcore.AddSync(&out))
	assert.ErrorContains(t, err, "LOG_LEVEL")

	_, err = New("info", "xml", zapcore.AddSync(&out))
	assert.ErrorContains(t, err, "LOG_FORMAT")
}

func TestNewJSONFormat(t *testing.T) {
	var out bytes.Buffer
	logger, err := New("info", FormatJSON, zapcore.AddSync(&out))
	require.NoError(t, err)
	logger.Info("stored", zap.String("batch", "b1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "stored", line["msg"])
	assert.Equal(t, "b1", line["batch"])
}

func TestInitReplacesGlobals(t *testing.T) {
	require.NoError(t, Init("error", FormatConsole))
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.ErrorLevel))
}
