package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/config"
	"billbook/internal/logger"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	zl := logger.NewWithWriter(config.LogConfig{Level: "warn", Format: "json"}, &buf)

	zl.Info().Msg("dropped")
	zl.Warn().Str("document_id", "abc").Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "abc", entry["document_id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewWithWriter_InstallsGlobal(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(config.LogConfig{Level: "debug", Format: "json"}, &buf)

	log.Debug().Msg("via global")
	assert.Contains(t, buf.String(), "via global")
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())
}

func TestNewWithWriter_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	zl := logger.NewWithWriter(config.LogConfig{Level: "loud", Format: "console"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, zl.GetLevel())
}
