package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestErrorRecordsCarryStack(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")

	log.Error("boom")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "boom", rec["msg"])
	assert.Contains(t, rec, "stacktrace")
}

func TestInfoRecordsHaveNoStack(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info").With(slog.String("request_id", "abc"))

	log.Info("ok")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "abc", rec["request_id"])
	assert.NotContains(t, rec, "stacktrace")
}
