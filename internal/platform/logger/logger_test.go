package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("hidden")
	log.Warn("shown", "job", "journalfor-vurderinger")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "journalfor-vurderinger", entry["job"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
