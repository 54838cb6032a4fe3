package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestText_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := Text(&buf, "info")

	logger.Debug("hidden")
	logger.Info("record updated", "record", "www.example.com")

	line := buf.String()
	assert.NotContains(t, line, "hidden")
	assert.Regexp(t, regexp.MustCompile(`^time="\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}" level=INFO source=logging_test\.go\(\d+\) msg="record updated"`), line)
	assert.Contains(t, line, "record=www.example.com")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	JSON(&buf, "warn").Warn("skipped", "count", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "skipped", entry["msg"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestOpenFile_Appends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	for _, msg := range []string{"first\n", "second\n"} {
		w, closeFn, err := OpenFile(dir, "ddns.log")
		require.NoError(t, err)
		_, err = w.Write([]byte(msg))
		require.NoError(t, err)
		require.NoError(t, closeFn())
	}

	data, err := os.ReadFile(filepath.Join(dir, "ddns.log"))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestOpenFile_Stdout(t *testing.T) {
	w, closeFn, err := OpenFile("", "ignored.log")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	assert.NoError(t, closeFn())
}
