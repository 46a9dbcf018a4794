package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "", slog.LevelInfo)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.With("component", "index").Info("built", "entries", 42)
	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "built")
	assert.Contains(t, out, "component"+reset+"=index")
	assert.Contains(t, out, "entries"+reset+"=42")
}

func TestPrettyHandlerGroup(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "", slog.LevelDebug)
	log.WithGroup("db").Warn("slow", "ms", 120)
	assert.Contains(t, buf.String(), "WRN")
	assert.Contains(t, buf.String(), "db.ms"+reset+"=120")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "json", slog.LevelInfo)
	log.Info("hello", "word", "ទេ")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "ទេ", rec["word"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
