package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/floatdump/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.Log{Level: "info", Format: "json"})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Int("records", 3).Msg("done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "done", entry["message"])
	assert.Equal(t, float64(3), entry["records"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.Log{Level: "warn", Format: "console"})
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Str("path", "x.bin").Msg("careful")
	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "path=x.bin")
	assert.NotContains(t, out, "\x1b[", "console output must not be colored")
}

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.Log{})
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, config.Log{Level: "loud"})
	assert.Error(t, err)
}
