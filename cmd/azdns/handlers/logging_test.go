package handlers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azdns/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := newLogger(&config.Config{LogLevel: "warn", LogFormat: config.LogFormatJSON}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "warn", line["level"])
}

func TestNewLogger_Console(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := newLogger(&config.Config{LogLevel: "info", LogFormat: config.LogFormatConsole}, &buf)

	logger.Info().Str("zone", "contoso1.com").Msg("created")
	assert.Contains(t, buf.String(), "created")
	assert.Contains(t, buf.String(), "zone=contoso1.com")
	assert.NotContains(t, buf.String(), "\x1b[", "no color when not writing to a terminal")
}
