package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "json", Output: &buf})

	log.Info("dropped")
	log.Warn("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "warn", entry["level"])
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Output: &buf, Service: "fraudguard"})

	log.WithFields(map[string]interface{}{
		"alert_id": "ALT-001",
		"action":   "resolve",
	}).WithError(errors.New("boom")).Info("Alert transition")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "ALT-001", entry["alert_id"])
	assert.Equal(t, "resolve", entry["action"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "fraudguard", entry["service"])
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	assert.Equal(t, parseLevel("info"), parseLevel("verbose"))
	assert.Equal(t, parseLevel("error"), parseLevel("ERROR"))
}
